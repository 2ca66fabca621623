package cmd

import (
	"fmt"

	"github.com/corey/bleep/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "Prints defaults, config file and flags merged, as YAML usable with --config.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(s)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagConfig != "" {
		fmt.Fprintf(out, "# from %s\n", flagConfig)
	}
	_, err = out.Write(data)
	return err
}
