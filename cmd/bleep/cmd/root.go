package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/corey/bleep/internal/app"
	"github.com/corey/bleep/internal/config"
	"github.com/corey/bleep/internal/domain/filter"
	"github.com/corey/bleep/internal/ports"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagMask      string
	flagWords     []string
	flagLists     []string
	flagBuiltins  []string
	flagStrategy  string
	flagMode      string
	flagNoExact   bool
	flagNoPattern bool
	flagNoTrie    bool
	flagLogLevel  string
	flagNoColor   bool
)

var rootCmd = &cobra.Command{
	Use:               "bleep",
	Short:             "bleep — disallowed-word detection and redaction",
	Long:              "Detects and masks disallowed words (and simple spelling variants) using exact, pattern, trie or composite matching.",
	PersistentPreRunE: setupLogging,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&flagConfig, "config", "c", "", "YAML config file")
	f.StringVar(&flagMask, "mask", "", "Redaction character (default *)")
	f.StringArrayVar(&flagWords, "words", nil, "Extra disallowed word (repeatable)")
	f.StringArrayVarP(&flagLists, "list", "l", nil, "Word-list file, one entry per line (repeatable)")
	f.StringArrayVarP(&flagBuiltins, "builtin", "b", nil, "Bundled word list to load, e.g. en (repeatable)")
	f.StringVarP(&flagStrategy, "strategy", "s", "", "Strategy: exact, pattern, trie, composite")
	f.StringVar(&flagMode, "mode", "", "Composite redaction mode: pipeline, union")
	f.BoolVar(&flagNoExact, "no-exact", false, "Composite: disable exact matching")
	f.BoolVar(&flagNoPattern, "no-pattern", false, "Composite: disable pattern matching")
	f.BoolVar(&flagNoTrie, "no-trie", false, "Composite: disable trie matching")
	f.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.BoolVar(&flagNoColor, "no-color", false, "Suppress color output")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(redactCmd)
	rootCmd.AddCommand(spansCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging installs a text handler on stderr at --log-level.
func setupLogging(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(flagLogLevel)); err != nil {
		return errors.Errorf("invalid --log-level %q (want debug, info, warn or error)", flagLogLevel)
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
	return nil
}

// resolveSettings layers the config file and then explicitly set flags over
// the built-in defaults.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}
	changed := cmd.Flags().Changed

	if changed("mask") {
		m, err := config.ParseMask(flagMask)
		if err != nil {
			return config.Settings{}, err
		}
		s.Filter.Mask = m
	}
	s.Filter.Words = append(s.Filter.Words, flagWords...)
	s.WordLists = append(s.WordLists, flagLists...)
	s.Builtins = append(s.Builtins, flagBuiltins...)

	if changed("strategy") {
		st, err := config.ParseStrategy(strings.ToLower(flagStrategy))
		if err != nil {
			return config.Settings{}, err
		}
		s.Strategy = st
	}
	if changed("mode") {
		m, err := filter.ParseMode(strings.ToLower(flagMode))
		if err != nil {
			return config.Settings{}, err
		}
		s.Mode = m
	}
	if flagNoExact {
		s.UseExact = false
	}
	if flagNoPattern {
		s.UsePattern = false
	}
	if flagNoTrie {
		s.UseTrie = false
	}
	return s, nil
}

// inputs returns the positional arguments, or stdin lines when there are none
// and stdin is not a terminal.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	in := cmd.InOrStdin()
	if in == os.Stdin && !isStdinPipe() {
		return nil, errors.New("no input: pass text as arguments or pipe it on stdin")
	}
	return readLines(in)
}

// newApp builds the app for the resolved settings. watcher may be nil.
func newApp(cmd *cobra.Command, watcher ports.Watcher) (*app.App, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}
	return app.New(app.Config{Settings: s, Logger: slog.Default(), Watcher: watcher})
}
