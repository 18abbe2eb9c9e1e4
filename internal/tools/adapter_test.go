package tools

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubBackend struct {
	formatted string
	report    string
	err       error
}

func (s stubBackend) Name() string { return "stub" }

func (s stubBackend) Format(string) (string, error) { return s.formatted, s.err }

func (s stubBackend) Lint(string) (string, error) { return s.report, s.err }

func TestFormatJavaIndentsEveryLine(t *testing.T) {
	code := "int a = 1;\nint b = 2;"
	assert.Equal(t, "    int a = 1;\n    int b = 2;", NewAdapter(nil).Format("java", code))
}

func TestFormatJavaKeepsBlankLinesBare(t *testing.T) {
	code := "class A {\n\n}\n"
	assert.Equal(t, "    class A {\n\n    }\n", NewAdapter(nil).Format("java", code))
}

func TestFormatJavaCustomIndent(t *testing.T) {
	assert.Equal(t, "\tx;", NewAdapter(nil, WithIndent("\t")).Format("java", "x;"))
}

func TestFormatPythonUnchangedWithoutTool(t *testing.T) {
	code := "def f( a ):\n  return a\n"
	assert.Equal(t, code, NewAdapter(Passthrough{}).Format("python", code))
}

func TestFormatPythonUsesBackend(t *testing.T) {
	adapter := NewAdapter(stubBackend{formatted: "x = 1\n"})
	assert.Equal(t, "x = 1\n", adapter.Format("python", "x=1\n"))
}

func TestFormatPythonBackendFailureLogsAndPassesThrough(t *testing.T) {
	var logs bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logs)

	adapter := NewAdapter(stubBackend{err: errors.New("crashed")}, WithLogger(log))
	assert.Equal(t, "x=1\n", adapter.Format("python", "x=1\n"))
	assert.Contains(t, logs.String(), "python tool failed")
	assert.Contains(t, logs.String(), "crashed")
}

func TestFormatOtherLanguagesUnchanged(t *testing.T) {
	adapter := NewAdapter(stubBackend{formatted: "changed"})
	for _, lang := range []string{"perl", "lua", "kotlin", "cobol"} {
		assert.Equal(t, "x = 1", adapter.Format(lang, "x = 1"), lang)
	}
}

func TestLint(t *testing.T) {
	tests := []struct {
		name    string
		backend Backend
		lang    string
		want    string
	}{
		{"python without linter", Passthrough{}, "python", "# pyflakes not installed, skipping lint."},
		{"python with linter", stubBackend{report: "<stdin>:1:1: undefined name 'x'\n"}, "python", "<stdin>:1:1: undefined name 'x'\n"},
		{"python clean", stubBackend{}, "python", ""},
		{"java", stubBackend{report: "ignored"}, "java", LintUnsupported},
		{"unknown", Passthrough{}, "cobol", LintUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAdapter(tt.backend).Lint(tt.lang, "x"))
		})
	}
}

func TestLintSkippedNamesConfiguredLinter(t *testing.T) {
	adapter := NewAdapter(Passthrough{}, WithLinterName("ruff"))
	assert.Equal(t, "# ruff not installed, skipping lint.", adapter.Lint("python", "x"))
}

func TestLintFailureIsNotReportedAsMissingTool(t *testing.T) {
	var logs bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logs)

	adapter := NewAdapter(stubBackend{err: errors.New("pyflakes failed: signal: killed")}, WithLogger(log))
	got := adapter.Lint("python", "x")
	assert.Equal(t, "# pyflakes failed, no lint report produced.", got)
	assert.NotEqual(t, adapter.LintSkipped(), got)
	assert.Contains(t, logs.String(), "signal: killed")
}
