package tools

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolMissing is returned by a Backend whose underlying tool is not installed.
var ErrToolMissing = errors.New("tool not installed")

// Backend formats and lints python source through an external capability.
type Backend interface {
	Name() string
	Format(code string) (string, error)
	Lint(code string) (string, error)
}

// Passthrough is the backend used when no external tool is available.
type Passthrough struct{}

func (Passthrough) Name() string { return "passthrough" }

func (Passthrough) Format(string) (string, error) { return "", ErrToolMissing }

func (Passthrough) Lint(string) (string, error) { return "", ErrToolMissing }

// CommandRunner runs name with args, feeding stdin, and returns what the
// process wrote to stdout and stderr.
type CommandRunner func(stdin string, name string, args ...string) (stdout string, stderr string, err error)

// Tool is a resolved executable. An empty Path means the tool is unavailable.
type Tool struct {
	Name string
	Path string
	Args []string
}

// ExecBackend delegates to external executables.
type ExecBackend struct {
	Formatter Tool
	Linter    Tool
	Run       CommandRunner
}

func (b *ExecBackend) Name() string {
	names := make([]string, 0, 2)
	for _, tool := range []Tool{b.Formatter, b.Linter} {
		if tool.Path != "" {
			names = append(names, tool.Name)
		}
	}
	return "exec(" + strings.Join(names, ",") + ")"
}

func (b *ExecBackend) Format(code string) (string, error) {
	if b.Formatter.Path == "" {
		return "", ErrToolMissing
	}
	// Only stdout is source; stderr carries warnings.
	stdout, stderr, err := b.runner()(code, b.Formatter.Path, b.Formatter.Args...)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w: %s", b.Formatter.Name, err, strings.TrimSpace(stderr))
	}
	return stdout, nil
}

// Lint returns the linter report. Linters exit non-zero when they find
// problems, so a non-zero exit with output is still a report. Syntax errors
// arrive on stderr, so both streams make up the report.
func (b *ExecBackend) Lint(code string) (string, error) {
	if b.Linter.Path == "" {
		return "", ErrToolMissing
	}
	stdout, stderr, err := b.runner()(code, b.Linter.Path, b.Linter.Args...)
	out := stdout + stderr
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && strings.TrimSpace(out) != "" {
			return out, nil
		}
		return "", fmt.Errorf("%s failed: %w: %s", b.Linter.Name, err, strings.TrimSpace(out))
	}
	return out, nil
}

func (b *ExecBackend) runner() CommandRunner {
	if b.Run == nil {
		return defaultRunner
	}
	return b.Run
}

func defaultRunner(stdin string, name string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Select picks the backend once at startup: an ExecBackend when at least one
// configured tool resolves, Passthrough otherwise.
func Select(cfg Config, lookPath func(file string) (string, error)) Backend {
	capabilities := ProbeCapabilitiesWithLookPath(cfg, lookPath)
	backend := &ExecBackend{
		Formatter: Tool{Name: cfg.Formatter, Args: cfg.FormatterArgs},
		Linter:    Tool{Name: cfg.Linter, Args: cfg.LinterArgs},
	}
	for _, capability := range capabilities {
		if !capability.Available {
			continue
		}
		switch capability.Role {
		case RoleFormatter:
			backend.Formatter.Path = capability.Path
		case RoleLinter:
			backend.Linter.Path = capability.Path
		}
	}
	if backend.Formatter.Path == "" && backend.Linter.Path == "" {
		return Passthrough{}
	}
	return backend
}
