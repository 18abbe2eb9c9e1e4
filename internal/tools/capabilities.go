package tools

import (
	"os/exec"
	"strings"
)

const (
	RoleFormatter = "formatter"
	RoleLinter    = "linter"
)

// Capability describes whether one external tool can be used.
type Capability struct {
	Language  string `json:"language"`
	Role      string `json:"role"`
	Tool      string `json:"tool"`
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Config names the external python formatter and linter.
type Config struct {
	Formatter     string
	FormatterArgs []string
	Linter        string
	LinterArgs    []string
}

func DefaultConfig() Config {
	return Config{
		Formatter:     "autopep8",
		FormatterArgs: []string{"-"},
		Linter:        "pyflakes",
	}
}

func ProbeCapabilities(cfg Config) []Capability {
	return ProbeCapabilitiesWithLookPath(cfg, exec.LookPath)
}

func ProbeCapabilitiesWithLookPath(cfg Config, lookPath func(file string) (string, error)) []Capability {
	return []Capability{
		probe(RoleFormatter, cfg.Formatter, lookPath),
		probe(RoleLinter, cfg.Linter, lookPath),
	}
}

func probe(role, tool string, lookPath func(file string) (string, error)) Capability {
	capability := Capability{Language: "python", Role: role, Tool: strings.TrimSpace(tool)}
	if capability.Tool == "" {
		capability.Reason = "not_configured"
		return capability
	}
	path, err := lookPath(capability.Tool)
	if err != nil {
		capability.Reason = "tool_not_found"
		return capability
	}
	capability.Available = true
	capability.Path = path
	return capability
}
