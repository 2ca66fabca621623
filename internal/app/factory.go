package app

import (
	"log/slog"

	"github.com/corey/bleep/internal/adapters/ahocorasick"
	"github.com/corey/bleep/internal/config"
	"github.com/corey/bleep/internal/domain/filter"
	"github.com/corey/bleep/internal/ports"
)

// BuildFilter constructs the filter named by s.Strategy. Exact matching is
// backed by the Aho-Corasick adapter. Word lists are not loaded here.
func BuildFilter(s config.Settings, log *slog.Logger) ports.Filter {
	cfg := s.Filter
	if log != nil {
		cfg.Logger = log
	}
	cfg.Matcher = func() ports.KeywordMatcher { return ahocorasick.New(nil) }

	switch s.Strategy {
	case config.StrategyExact:
		return filter.NewExactMatchFilter(cfg)
	case config.StrategyPattern:
		return filter.NewPatternFilter(cfg)
	case config.StrategyTrie:
		return filter.NewTrieFilter(cfg)
	default:
		c := filter.NewCompositeFilter(cfg)
		c.Configure(s.UseExact, s.UsePattern, s.UseTrie)
		c.SetMode(s.Mode)
		return c
	}
}
