package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	fsw "github.com/corey/bleep/internal/adapters/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redact stdin line by line, reloading word lists when they change",
	Long:  "Streams stdin to stdout through the filter. Word lists given with --list or the config file are reloaded on every save; additions apply immediately, removals on restart.",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
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
	if len(a.Settings.WordLists) == 0 {
		slog.Info("no word lists configured, nothing to reload")
	}
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A read blocked on a terminal cannot observe ctx, so the stream runs
	// aside and a signal ends the command without waiting for the next line.
	done := make(chan error, 1)
	go func() {
		done <- a.Stream(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	}()
	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}
