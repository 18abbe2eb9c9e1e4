package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned for verbs missing from the command table.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInput wraps failures reading the code payload from input.
var ErrInput = errors.New("failed to read input")

// UsageError reports a wrong argument count for a verb.
type UsageError struct {
	Command Command
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Command.Usage()
}

// Command describes one verb. Placeholders wrapped in [] are optional and
// must follow the required ones.
type Command struct {
	Verb    string
	Args    []string
	Summary string
	// InteractiveOnly verbs are handled by the session loop, not Execute.
	InteractiveOnly bool
}

func (c Command) Usage() string {
	return strings.TrimSpace(c.Verb + " " + strings.Join(c.Args, " "))
}

func (c Command) MinArgs() int {
	n := 0
	for _, arg := range c.Args {
		if !strings.HasPrefix(arg, "[") {
			n++
		}
	}
	return n
}

func (c Command) MaxArgs() int {
	return len(c.Args)
}

func (c Command) validate(args []string) error {
	if len(args) < c.MinArgs() || len(args) > c.MaxArgs() {
		return &UsageError{Command: c}
	}
	return nil
}

// Commands is the verb table shared by one-shot and interactive modes.
var Commands = []Command{
	{Verb: "snippet", Args: []string{"<lang>", "<topic>"}, Summary: "Show code snippet (topics: hello, function, class)"},
	{Verb: "format", Args: []string{"<lang>"}, Summary: "Format code from stdin (end with EOF)"},
	{Verb: "lint", Args: []string{"<lang>"}, Summary: "Lint code from stdin (end with EOF)"},
	{Verb: "doc", Args: []string{"<lang>"}, Summary: "Show documentation link"},
	{Verb: "template", Args: []string{"<lang>", "<kind>"}, Summary: "Generate starter template (hello, function, class)"},
	{Verb: "tip", Args: []string{"<lang>"}, Summary: "Show a style tip for a language"},
	{Verb: "search", Args: []string{"<keyword>", "[lang]"}, Summary: "Search snippets for a keyword"},
	{Verb: "save", Args: []string{"<lang>", "<topic>", "<file>"}, Summary: "Write a snippet to a file"},
	{Verb: "batch", Args: []string{"[dir]"}, Summary: "Write every template to a directory"},
	{Verb: "langs", Summary: "List supported languages"},
	{Verb: "help", Summary: "Show this help", InteractiveOnly: true},
	{Verb: "exit", Summary: "Quit", InteractiveOnly: true},
}

// Lookup finds verb in the command table.
func Lookup(verb string) (Command, bool) {
	for _, cmd := range Commands {
		if cmd.Verb == verb {
			return cmd, true
		}
	}
	return Command{}, false
}

// HelpText renders the command table.
func HelpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, cmd := range Commands {
		fmt.Fprintf(&b, "    %-26s - %s\n", cmd.Usage(), cmd.Summary)
	}
	return b.String()
}
