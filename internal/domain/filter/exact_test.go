package filter

import (
	"testing"

	"github.com/corey/bleep/internal/adapters/ahocorasick"
	"github.com/corey/bleep/internal/ports"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// ExactMatchFilter — per-word substring scan
// Expectation: occurrences of one word never overlap; different words may
// =============================================================================

func withMatcher(cfg Config) Config {
	cfg.Matcher = func() ports.KeywordMatcher { return ahocorasick.New(nil) }
	return cfg
}

func TestExact_SameWordDoesNotOverlapItself(t *testing.T) {
	f := NewExactMatchFilter(quiet(Config{Words: []string{"aa"}}))
	assert.Equal(t, "**a", f.Redact("aaa"))
	assert.Equal(t, "****", f.Redact("aaaa"))
}

func TestExact_DifferentWordsOverlapIndependently(t *testing.T) {
	f := NewExactMatchFilter(quiet(Config{Words: []string{"ass", "bastard"}}))
	assert.Equal(t, "*******", f.Redact("bastard"))

	f = NewExactMatchFilter(quiet(Config{Words: []string{"ab", "bc"}}))
	assert.Equal(t, []ports.Span{{Start: 0, End: 2}, {Start: 1, End: 3}}, f.Spans("abc"))
	assert.Equal(t, "***", f.Redact("abc"))
}

func TestExact_SubstringsInsideWords(t *testing.T) {
	// Plain substring matching: no word boundaries.
	f := NewExactMatchFilter(quiet(DefaultConfig()))
	assert.True(t, f.ContainsDisallowed("a classic"))
	assert.Equal(t, "a cl***ic", f.Redact("a classic"))
}

func TestExact_Idempotent(t *testing.T) {
	f := NewExactMatchFilter(quiet(DefaultConfig()))
	for _, in := range sampleTexts {
		once := f.Redact(in)
		assert.Equal(t, once, f.Redact(once), "input %q", in)
	}
}

func TestExact_Matches(t *testing.T) {
	f := NewExactMatchFilter(quiet(DefaultConfig()))
	assert.Equal(t, []string{"ass", "damn"}, f.Matches("Damn, what an ass"))
	assert.Nil(t, f.Matches("clean"))
}

func TestExact_WordsSortedAndFolded(t *testing.T) {
	f := NewExactMatchFilter(quiet(Config{Words: []string{"Shit", "DAMN", "shit"}}))
	f.AddWord("Ass")
	assert.Equal(t, []string{"ass", "damn", "shit"}, f.Words())
}

// =============================================================================
// ExactMatchFilter with the Aho-Corasick detector
// Expectation: identical detection to the substring loop, rebuilt on mutation
// =============================================================================

func TestExact_MatcherAgreesWithSubstringScan(t *testing.T) {
	plain := NewExactMatchFilter(quiet(DefaultConfig()))
	fast := NewExactMatchFilter(quiet(withMatcher(DefaultConfig())))
	for _, in := range sampleTexts {
		assert.Equal(t, plain.ContainsDisallowed(in), fast.ContainsDisallowed(in), "input %q", in)
		assert.Equal(t, plain.Redact(in), fast.Redact(in), "input %q", in)
		assert.ElementsMatch(t, plain.Matches(in), fast.Matches(in), "input %q", in)
	}
}

func TestExact_MatcherRebuiltOnAddWord(t *testing.T) {
	f := NewExactMatchFilter(quiet(withMatcher(Config{})))
	assert.False(t, f.ContainsDisallowed("kerfuffle"))
	f.AddWord("kerfuffle")
	assert.True(t, f.ContainsDisallowed("KERFUFFLE"))
}
