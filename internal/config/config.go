// Package config resolves the effective filter settings: built-in defaults,
// then an optional YAML file, then command-line overrides applied by the CLI.
package config

import (
	"os"

	"github.com/corey/bleep/internal/domain/filter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Strategy names which filter the CLI builds.
type Strategy string

const (
	StrategyExact     Strategy = "exact"
	StrategyPattern   Strategy = "pattern"
	StrategyTrie      Strategy = "trie"
	StrategyComposite Strategy = "composite"
)

// Strategies lists every strategy in the composite's fixed order.
var Strategies = []Strategy{StrategyExact, StrategyPattern, StrategyTrie, StrategyComposite}

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", errors.Errorf("unknown strategy %q (want exact, pattern, trie or composite)", name)
}

// Settings is the fully resolved configuration.
type Settings struct {
	Filter    filter.Config
	WordLists []string
	Builtins  []string // bundled list names, see package lists
	Strategy  Strategy

	// Composite-only switches.
	UseExact   bool
	UsePattern bool
	UseTrie    bool
	Mode       filter.Mode
}

// Default returns the built-in settings: default words and variants, '*'
// mask, composite strategy with everything enabled in pipeline mode.
func Default() Settings {
	return Settings{
		Filter:     filter.DefaultConfig(),
		Strategy:   StrategyComposite,
		UseExact:   true,
		UsePattern: true,
		UseTrie:    true,
		Mode:       filter.ModePipeline,
	}
}

// fileConfig is the YAML-serialized form of Settings.
type fileConfig struct {
	Mask            string   `yaml:"mask,omitempty"`
	Words           []string `yaml:"words,omitempty"`
	Variants        []string `yaml:"variants,omitempty"`
	ReplaceDefaults bool     `yaml:"replace_defaults,omitempty"`
	WordLists       []string `yaml:"word_lists,omitempty"`
	Builtins        []string `yaml:"builtin_lists,omitempty"`
	Strategy        string   `yaml:"strategy,omitempty"`
	Composite       struct {
		Exact   *bool  `yaml:"exact,omitempty"`
		Pattern *bool  `yaml:"pattern,omitempty"`
		Trie    *bool  `yaml:"trie,omitempty"`
		Mode    string `yaml:"mode,omitempty"`
	} `yaml:"composite,omitempty"`
}

// Load reads the YAML file at path over Default(). An empty path returns
// the defaults unchanged.
func Load(path string) (Settings, error) {
	base := Default()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "read config %s", path)
	}
	s, err := Parse(data, base)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "parse config %s", path)
	}
	return s, nil
}

// Parse applies YAML data over base. Words and variants extend the base
// lists unless replace_defaults is set.
func Parse(data []byte, base Settings) (Settings, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Settings{}, err
	}

	s := base
	s.Filter.Words = append([]string(nil), base.Filter.Words...)
	s.Filter.Variants = append([]string(nil), base.Filter.Variants...)
	s.WordLists = append([]string(nil), base.WordLists...)
	s.Builtins = append([]string(nil), base.Builtins...)

	if fc.Mask != "" {
		m, err := ParseMask(fc.Mask)
		if err != nil {
			return Settings{}, err
		}
		s.Filter.Mask = m
	}
	if fc.ReplaceDefaults {
		s.Filter.Words = nil
		s.Filter.Variants = nil
	}
	s.Filter.Words = append(s.Filter.Words, fc.Words...)
	s.Filter.Variants = append(s.Filter.Variants, fc.Variants...)
	s.WordLists = append(s.WordLists, fc.WordLists...)
	s.Builtins = append(s.Builtins, fc.Builtins...)

	if fc.Strategy != "" {
		st, err := ParseStrategy(fc.Strategy)
		if err != nil {
			return Settings{}, err
		}
		s.Strategy = st
	}
	if fc.Composite.Exact != nil {
		s.UseExact = *fc.Composite.Exact
	}
	if fc.Composite.Pattern != nil {
		s.UsePattern = *fc.Composite.Pattern
	}
	if fc.Composite.Trie != nil {
		s.UseTrie = *fc.Composite.Trie
	}
	if fc.Composite.Mode != "" {
		m, err := filter.ParseMode(fc.Composite.Mode)
		if err != nil {
			return Settings{}, err
		}
		s.Mode = m
	}
	return s, nil
}

// ParseMask validates a redaction character: exactly one ASCII byte.
func ParseMask(v string) (byte, error) {
	if len(v) != 1 || v[0] >= 0x80 {
		return 0, errors.Errorf("mask must be a single ASCII character, got %q", v)
	}
	return v[0], nil
}

// Marshal renders s in the YAML file format, for `bleep config`.
func Marshal(s Settings) ([]byte, error) {
	var fc fileConfig
	fc.Mask = string([]byte{s.Filter.Mask})
	fc.Words = s.Filter.Words
	fc.Variants = s.Filter.Variants
	fc.ReplaceDefaults = true
	fc.WordLists = s.WordLists
	fc.Builtins = s.Builtins
	fc.Strategy = string(s.Strategy)
	fc.Composite.Exact = &s.UseExact
	fc.Composite.Pattern = &s.UsePattern
	fc.Composite.Trie = &s.UseTrie
	fc.Composite.Mode = s.Mode.String()
	return yaml.Marshal(fc)
}
