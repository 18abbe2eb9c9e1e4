package dispatch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	Prompt         = "codetool> "
	Goodbye        = "Goodbye!"
	UnknownCommand = "Unknown command. Type 'help'."
	headerRule     = "======================================================================"
	headerTitle    = "CodeTool - Interactive Code Helper"
)

// Session is the interactive read-eval-print loop. It reads one command per
// line until "exit" or end of input.
type Session struct {
	d      Dispatcher
	reader *bufio.Reader
}

// NewSession wraps d for interactive use. Format and lint payloads are read
// from the same buffered input as command lines.
func NewSession(d *Dispatcher) *Session {
	reader := bufio.NewReader(d.In)
	s := &Session{d: *d, reader: reader}
	s.d.In = reader
	return s
}

// Run drives the loop. Bad input never ends it; only exit, end of input, or
// an I/O failure on input or output does.
func (s *Session) Run() error {
	out := s.d.Out
	fmt.Fprintf(out, "%s\n%s\n%s\n", headerRule, headerTitle, headerRule)
	fmt.Fprintf(out, "Supported languages: %s\n", strings.Join(s.d.Catalog.Languages(), ", "))
	fmt.Fprintln(out, "Type 'help' for commands, 'exit' to quit.")

	for {
		if _, err := fmt.Fprint(out, Prompt); err != nil {
			return err
		}
		line, readErr := s.reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: %w", ErrInput, readErr)
		}

		done, err := s.handle(strings.Fields(line))
		if err != nil || done {
			return err
		}
		if errors.Is(readErr, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
	}
}

func (s *Session) handle(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}
	out := s.d.Out
	verb, args := fields[0], fields[1:]

	if cmd, ok := Lookup(verb); ok && cmd.InteractiveOnly {
		if err := cmd.validate(args); err != nil {
			_, err = fmt.Fprintln(out, err.Error())
			return false, err
		}
	}

	switch verb {
	case "exit":
		_, err := fmt.Fprintln(out, Goodbye)
		return true, err
	case "help":
		_, err := fmt.Fprint(out, "\n"+HelpText()+"\n")
		return false, err
	}

	err := s.d.Execute(verb, args)
	var usageErr *UsageError
	switch {
	case err == nil:
		return false, nil
	case errors.As(err, &usageErr):
		_, err = fmt.Fprintln(out, usageErr.Error())
		return false, err
	case errors.Is(err, ErrUnknownCommand):
		_, err = fmt.Fprintln(out, UnknownCommand)
		return false, err
	case errors.Is(err, ErrInput):
		return true, err
	default:
		if s.d.Log != nil {
			s.d.Log.WithError(err).WithField("verb", verb).Warn("command failed")
		}
		_, err = fmt.Fprintf(out, "Error: %v\n", err)
		return false, err
	}
}
