package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/corey/bleep/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// benchSentence is repeated to build the timing input.
const benchSentence = "This is some text with fuck and shit in it. "

var (
	benchRepeat int
	benchRuns   int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time redaction of a long text with every strategy",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchRepeat, "repeat", "n", 1000, "Times the sample sentence is repeated")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 1, "Redactions per strategy (average reported)")
}

// benchResult is one strategy's timing.
type benchResult struct {
	strategy config.Strategy
	per      time.Duration
	masked   int
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchRepeat < 1 || benchRuns < 1 {
		return errors.New("--repeat and --runs must be at least 1")
	}
	apps, err := appsByStrategy(cmd)
	if err != nil {
		return err
	}

	text := strings.Repeat(benchSentence, benchRepeat)
	results := make([]benchResult, 0, len(apps))
	for i, st := range config.Strategies {
		f := apps[i].Filter
		var out string
		start := time.Now()
		for r := 0; r < benchRuns; r++ {
			out = f.Redact(text)
		}
		per := time.Since(start) / time.Duration(benchRuns)
		results = append(results, benchResult{strategy: st, per: per, masked: countMasked(text, out)})
	}

	w := cmd.OutOrStdout()
	color := useColor()
	fmt.Fprintf(w, "%s\n", paint(fmt.Sprintf("⚡ %d bytes (%d repeats), %d run(s) each", len(text), benchRepeat, benchRuns), colorBold, color))
	for _, r := range results {
		mbps := float64(len(text)) / max(r.per.Seconds(), 1e-9) / (1 << 20)
		fmt.Fprintf(w, "  %-10s %10s  %8.1f MB/s  %d bytes masked\n",
			r.strategy, r.per.Round(time.Microsecond), mbps, r.masked)
	}
	return nil
}

// countMasked counts bytes that differ between the input and its redaction.
func countMasked(in, out string) int {
	n := 0
	for i := 0; i < len(in) && i < len(out); i++ {
		if in[i] != out[i] {
			n++
		}
	}
	return n
}
