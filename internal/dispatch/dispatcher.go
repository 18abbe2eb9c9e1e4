package dispatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/morozRed/codetool/internal/catalog"
	"github.com/morozRed/codetool/internal/fileutil"
	"github.com/morozRed/codetool/internal/templates"
	"github.com/morozRed/codetool/internal/tools"
)

const pastePrompt = "Paste code, then Ctrl-D (EOF):"

// Dispatcher executes verbs against the catalog, template generator and
// format/lint adapter.
type Dispatcher struct {
	Catalog   *catalog.Catalog
	Templates *templates.Generator
	Adapter   *tools.Adapter
	Log       logrus.FieldLogger

	In  io.Reader
	Out io.Writer

	// Terminal reports that In is an interactive terminal, which enables the
	// paste prompt for format and lint.
	Terminal bool
	// JSON switches langs, search and batch to machine-readable output.
	JSON      bool
	OutputDir string
}

// Execute runs verb with args. Wrong argument counts yield *UsageError and
// unknown verbs ErrUnknownCommand.
func (d *Dispatcher) Execute(verb string, args []string) error {
	cmd, ok := Lookup(verb)
	if !ok || cmd.InteractiveOnly {
		return fmt.Errorf("%w %q", ErrUnknownCommand, verb)
	}
	if err := cmd.validate(args); err != nil {
		return err
	}
	if d.Log != nil {
		d.Log.WithFields(logrus.Fields{"verb": verb, "args": args}).Debug("dispatch")
	}

	switch verb {
	case "langs":
		return d.langs()
	case "snippet":
		return d.println(d.Catalog.Snippet(args[0], args[1]))
	case "template":
		return d.println(d.Templates.Generate(args[0], args[1]))
	case "doc":
		return d.println(d.Catalog.DocLink(args[0]))
	case "tip":
		return d.println(d.Catalog.Tip(args[0]))
	case "format":
		code, err := d.readPayload()
		if err != nil {
			return err
		}
		return d.println(d.Adapter.Format(args[0], code))
	case "lint":
		code, err := d.readPayload()
		if err != nil {
			return err
		}
		return d.println(d.Adapter.Lint(args[0], code))
	case "search":
		lang := ""
		if len(args) > 1 {
			lang = args[1]
		}
		return d.search(args[0], lang)
	case "save":
		if err := d.Templates.Save(args[0], args[1], args[2]); err != nil {
			return err
		}
		return d.println("Snippet written to " + args[2])
	case "batch":
		dir := d.OutputDir
		if len(args) > 0 {
			dir = args[0]
		}
		return d.batch(dir)
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, verb)
}

func (d *Dispatcher) langs() error {
	languages := d.Catalog.Languages()
	if d.JSON {
		return fileutil.PrintJSON(d.Out, map[string][]string{"languages": languages})
	}
	return d.println("Supported languages: " + strings.Join(languages, ", "))
}

func (d *Dispatcher) search(keyword, lang string) error {
	matches := d.Catalog.Search(keyword, lang)
	if d.JSON {
		return fileutil.PrintJSON(d.Out, matches)
	}
	if len(matches) == 0 {
		return d.println(fmt.Sprintf("No snippets match %q.", keyword))
	}
	for _, match := range matches {
		if _, err := fmt.Fprintf(d.Out, "%s/%s:%d: %s\n", match.Language, match.Topic, match.Line, match.Text); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) batch(dir string) error {
	result, err := d.Templates.Batch(dir)
	if err != nil {
		return err
	}
	if d.JSON {
		return fileutil.PrintJSON(d.Out, result)
	}
	return d.println(fmt.Sprintf("Wrote %d templates to %s (%d changed)", len(result.Files), result.Dir, result.Rewritten))
}

func (d *Dispatcher) readPayload() (string, error) {
	if d.Terminal {
		if err := d.println(pastePrompt); err != nil {
			return "", err
		}
	}
	data, err := io.ReadAll(d.In)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInput, err)
	}
	return string(data), nil
}

func (d *Dispatcher) println(text string) error {
	_, err := fmt.Fprintln(d.Out, text)
	return err
}
