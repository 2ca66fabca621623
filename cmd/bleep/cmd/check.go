package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check [text ...]",
	Short: "Report which inputs contain disallowed words",
	Long:  "Checks each argument (or each stdin line). Exit status: 0 clean, 1 found, 2 error.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Quiet mode (exit code only)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, nil)
	if err != nil {
		return err
	}
	lines, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := useColor()
	found := false
	for _, line := range lines {
		hit := a.Filter.ContainsDisallowed(line)
		found = found || hit
		if checkQuiet {
			if found {
				break
			}
			continue
		}
		mark := paint("clean", colorGreen, color)
		if hit {
			mark = paint("found", colorRed, color)
		}
		fmt.Fprintf(out, "%s  %s\n", mark, highlight(line, a.Filter.Spans(line), color))
	}
	return foundExit(found)
}
