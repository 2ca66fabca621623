// Package filter implements the redaction strategies behind ports.Filter:
// an exact substring scanner, a regexp variant matcher, a trie with greedy
// longest-match redaction, and a composite that chains or unions the three.
//
// Filters are not safe for concurrent mutation. Readers may share an
// instance once loading is done; anything that keeps calling AddWord or
// BulkLoad while others read must hold an external reader/writer lock.
package filter

import (
	"log/slog"

	"github.com/corey/bleep/internal/ports"
)

// DefaultMask is the redaction character used when Config.Mask is zero.
const DefaultMask byte = '*'

// DefaultWords is the built-in disallowed word list.
var DefaultWords = []string{"shit", "fuck", "damn", "ass", "bitch", "bastard"}

// DefaultVariants are the built-in explicit variant expressions. They catch
// wildcard glyphs standing in for vowels ("f*ck", "sh*t").
var DefaultVariants = []string{`f[aeiou*]+ck`, `sh[aeiou*]+t`}

// Config is the construction-time configuration shared by every strategy.
// Mask is fixed for the lifetime of the filter built from it.
type Config struct {
	// Mask overwrites every byte of a matched span. Zero means DefaultMask.
	Mask byte

	// Words seeds the disallowed word list.
	Words []string

	// Variants seeds explicit pattern expressions. Only the pattern
	// strategy reads them; a malformed entry is reported and skipped.
	Variants []string

	// Logger receives load and compile reports. Nil means slog.Default().
	Logger *slog.Logger

	// Matcher, when set, builds the single-pass keyword matcher the exact
	// strategy uses for detection. Nil falls back to one substring test
	// per word.
	Matcher func() ports.KeywordMatcher
}

// DefaultConfig returns the built-in word list, variants and mask.
func DefaultConfig() Config {
	return Config{
		Mask:     DefaultMask,
		Words:    append([]string(nil), DefaultWords...),
		Variants: append([]string(nil), DefaultVariants...),
	}
}

func (c Config) withDefaults() Config {
	if c.Mask == 0 {
		c.Mask = DefaultMask
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
