package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spansCmd = &cobra.Command{
	Use:   "spans [text ...]",
	Short: "Show the byte ranges that would be masked",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSpans,
}

func runSpans(cmd *cobra.Command, args []string) error {
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
	for _, line := range lines {
		spans := a.Filter.Spans(line)
		fmt.Fprintf(out, "%s  %s\n", paint(fmt.Sprintf("%d spans", len(spans)), colorBold, color), highlight(line, spans, color))
		for _, sp := range spans {
			fmt.Fprintf(out, "  [%d,%d) %q\n", sp.Start, sp.End, line[sp.Start:sp.End])
		}
	}
	return nil
}
