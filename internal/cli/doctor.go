package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morozRed/codetool/internal/fileutil"
	"github.com/morozRed/codetool/internal/tools"
)

type DoctorSummary struct {
	Mode        string             `json:"mode"`
	ConfigFile  string             `json:"config_file,omitempty"`
	Backend     string             `json:"backend"`
	Tools       []tools.Capability `json:"tools"`
	Healthy     bool               `json:"healthy"`
	Suggestions []string           `json:"suggestions,omitempty"`
}

func RunDoctor(cmd *cobra.Command, env *Environment) error {
	if err := env.requireSetup(); err != nil {
		return err
	}

	summary := DoctorSummary{
		Mode:       "doctor",
		ConfigFile: env.Config.Source,
		Backend:    env.Dispatcher.Adapter.Backend().Name(),
		Tools:      tools.ProbeCapabilitiesWithLookPath(env.Config.Python.ToolsConfig(), lookPath),
		Healthy:    true,
	}
	for _, capability := range summary.Tools {
		if capability.Available {
			continue
		}
		summary.Healthy = false
		if capability.Tool != "" {
			summary.Suggestions = append(summary.Suggestions, "pip install "+capability.Tool)
		} else {
			summary.Suggestions = append(summary.Suggestions, "set python."+capability.Role+" in codetool.yaml")
		}
	}
	sort.Strings(summary.Suggestions)

	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if asJSON {
		return fileutil.PrintJSON(out, summary)
	}

	status := "issues"
	if summary.Healthy {
		status = "ok"
	}
	fmt.Fprintf(out, "doctor: %s\n", status)
	if summary.ConfigFile != "" {
		fmt.Fprintf(out, "config: %s\n", summary.ConfigFile)
	} else {
		fmt.Fprintln(out, "config: defaults (no codetool.yaml found)")
	}
	fmt.Fprintf(out, "backend: %s\n", summary.Backend)
	for _, capability := range summary.Tools {
		state := "available at " + capability.Path
		if !capability.Available {
			state = strings.ReplaceAll(capability.Reason, "_", " ")
		}
		fmt.Fprintf(out, "%s %s %s: %s\n", capability.Language, capability.Role, capability.Tool, state)
	}
	for _, suggestion := range summary.Suggestions {
		fmt.Fprintf(out, "next: %s\n", suggestion)
	}
	return nil
}
