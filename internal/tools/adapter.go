package tools

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DefaultIndent   = "    "
	LintUnsupported = "# Lint not supported for this language in this demo."
)

// Adapter formats and lints code per language. Only python reaches the
// backend; every other language gets a fixed transform. It never fails.
type Adapter struct {
	backend    Backend
	indent     string
	linterName string
	log        logrus.FieldLogger
}

type AdapterOption func(*Adapter)

func WithIndent(indent string) AdapterOption {
	return func(a *Adapter) {
		if indent != "" {
			a.indent = indent
		}
	}
}

func WithLinterName(name string) AdapterOption {
	return func(a *Adapter) {
		if name = strings.TrimSpace(name); name != "" {
			a.linterName = name
		}
	}
}

func WithLogger(log logrus.FieldLogger) AdapterOption {
	return func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	}
}

func NewAdapter(backend Backend, opts ...AdapterOption) *Adapter {
	if backend == nil {
		backend = Passthrough{}
	}
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	a := &Adapter{
		backend:    backend,
		indent:     DefaultIndent,
		linterName: DefaultConfig().Linter,
		log:        silent,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Backend() Backend {
	return a.backend
}

// LintSkipped is the message returned when the python linter is unavailable.
func (a *Adapter) LintSkipped() string {
	return fmt.Sprintf("# %s not installed, skipping lint.", a.linterName)
}

// LintFailed is the message returned when the installed linter errors out
// without producing a report.
func (a *Adapter) LintFailed() string {
	return fmt.Sprintf("# %s failed, no lint report produced.", a.linterName)
}

func (a *Adapter) Format(lang, code string) string {
	switch lang {
	case "python":
		formatted, err := a.backend.Format(code)
		if err != nil {
			a.logFallback("format", err)
			return code
		}
		return formatted
	case "java":
		return IndentLines(code, a.indent)
	default:
		return code
	}
}

func (a *Adapter) Lint(lang, code string) string {
	if lang != "python" {
		return LintUnsupported
	}
	report, err := a.backend.Lint(code)
	if err != nil {
		a.logFallback("lint", err)
		if errors.Is(err, ErrToolMissing) {
			return a.LintSkipped()
		}
		return a.LintFailed()
	}
	return report
}

func (a *Adapter) logFallback(op string, err error) {
	entry := a.log.WithFields(logrus.Fields{"op": op, "backend": a.backend.Name()})
	if errors.Is(err, ErrToolMissing) {
		entry.Debug("python tool not installed, passing input through")
		return
	}
	entry.WithError(err).Warn("python tool failed, passing input through")
}

// IndentLines prefixes every non-blank line of code with prefix.
func IndentLines(code, prefix string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, line := range strings.SplitAfter(code, "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}
