package cli

import (
	"fmt"

	"github.com/morozRed/codetool/internal/dispatch"
	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	env := &Environment{}

	rootCmd := &cobra.Command{
		Use:   "codetool",
		Short: "Code snippets, starter templates and documentation links",
		Long: `Codetool prints ready-made snippets, starter templates and documentation
links for python, java, perl, lua and kotlin, and passes python code through
autopep8 and pyflakes when they are installed.

Run without arguments for an interactive session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.Setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch.NewSession(env.Dispatcher).Run()
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w (put -- before arguments that start with -)", err)
	})
	rootCmd.PersistentFlags().String("config", "", "Config file, or directory containing codetool.yaml")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().Bool("json", false, "Print machine-readable output where supported")

	// Lookup Commands
	for _, command := range dispatch.Commands {
		if command.InteractiveOnly {
			continue
		}
		rootCmd.AddCommand(newVerbCommand(env, command))
	}

	// Inspect Commands
	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report which external formatter and linter are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunDoctor(cmd, env)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunConfig(cmd, env)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "codetool %s\n", version)
		},
	}

	rootCmd.AddCommand(
		doctorCmd,
		configCmd,
		versionCmd,
	)

	return rootCmd
}

// newVerbCommand exposes a dispatcher verb as a subcommand. Argument counts
// are checked by the dispatcher so both modes report the same usage line.
func newVerbCommand(env *Environment, command dispatch.Command) *cobra.Command {
	verbCmd := &cobra.Command{
		Use:   command.Usage(),
		Short: command.Summary,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.Dispatcher.Execute(command.Verb, args)
		},
	}
	if command.Verb == "search" {
		verbCmd.Example = `  codetool search println kotlin
  codetool search -- -> perl`
	}
	return verbCmd
}
