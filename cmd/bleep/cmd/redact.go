package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var redactCmd = &cobra.Command{
	Use:   "redact [text ...]",
	Short: "Mask disallowed words",
	Long:  "Prints each argument (or each stdin line) with every disallowed span overwritten by the mask character.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRedact,
}

func runRedact(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, nil)
	if err != nil {
		return err
	}
	lines, err := inputs(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, a.Filter.Redact(line))
	}
	return nil
}
