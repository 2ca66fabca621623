package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	fsw "github.com/corey/bleep/internal/adapters/fsnotify"
	"github.com/corey/bleep/internal/adapters/tailer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	followFromStart bool
	followPoll      time.Duration
)

var followCmd = &cobra.Command{
	Use:   "follow <file>",
	Short: "Redact lines as they are appended to a file (tail -f)",
	Long:  "Follows a growing file, such as a log, and prints each new line redacted. Word lists are reloaded on change, as with watch.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFollow,
}

func init() {
	followCmd.Flags().BoolVar(&followFromStart, "from-start", false, "Replay existing content before following")
	followCmd.Flags().DurationVar(&followPoll, "poll", 500*time.Millisecond, "How often to check the file for new lines")
}

func runFollow(cmd *cobra.Command, args []string) error {
	if followPoll <= 0 {
		return errors.New("--poll must be positive")
	}
	watcher, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	watcher.OnError(func(err error) {
		slog.Warn("word list watcher error", "err", err)
	})

	a, err := newApp(cmd, watcher)
	if err != nil {
		_ = watcher.Stop()
		return err
	}
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	t := tailer.New(tailer.Config{
		Path:         args[0],
		FromStart:    followFromStart,
		PollInterval: followPoll,
		OnError: func(err error) {
			slog.Warn("cannot read followed file", "path", args[0], "err", err)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Follow(ctx, t, cmd.OutOrStdout())
}
