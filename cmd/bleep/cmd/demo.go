package cmd

import (
	"fmt"
	"log/slog"

	"github.com/corey/bleep/internal/app"
	"github.com/corey/bleep/internal/config"
	"github.com/spf13/cobra"
)

// demoTexts exercise every default word, both default variants and one clean
// sentence.
var demoTexts = []string{
	"What the fuck are you doing?",
	"This is a shitty situation.",
	"You're such a bastard!",
	"I don't give a damn about it.",
	"He's a complete ass.",
	"She's being a real bitch today.",
	"This is f*cking amazing!",
	"What a sh*tty day!",
	"Hello, how are you today?",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run sample sentences through every strategy",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	apps, err := appsByStrategy(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := useColor()
	for i, st := range config.Strategies {
		f := apps[i].Filter
		fmt.Fprintf(out, "%s\n", paint(fmt.Sprintf("=== %s ===", st), colorBold, color))
		for _, text := range demoTexts {
			detected := paint("no", colorGreen, color)
			if f.ContainsDisallowed(text) {
				detected = paint("yes", colorRed, color)
			}
			fmt.Fprintf(out, "  original: %s\n", text)
			fmt.Fprintf(out, "  detected: %s\n", detected)
			fmt.Fprintf(out, "  redacted: %s\n", f.Redact(text))
			fmt.Fprintln(out, paint("  ---", colorGray, color))
		}
	}
	return nil
}

// appsByStrategy builds one app per entry of config.Strategies, all sharing
// the resolved settings and word lists.
func appsByStrategy(cmd *cobra.Command) ([]*app.App, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}
	apps := make([]*app.App, 0, len(config.Strategies))
	for _, st := range config.Strategies {
		s.Strategy = st
		a, err := app.New(app.Config{Settings: s, Logger: slog.Default()})
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, nil
}
