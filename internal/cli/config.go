package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func RunConfig(cmd *cobra.Command, env *Environment) error {
	if err := env.requireSetup(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if env.Config.Source != "" {
		fmt.Fprintf(out, "# loaded from %s\n", env.Config.Source)
	}
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(env.Config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return encoder.Close()
}
