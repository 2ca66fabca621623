// Package ports defines the interfaces (contracts) shared by the filtering core
// and its adapters. The domain filters implement Filter; adapters implement
// WordSource and Watcher. Nothing here depends on a concrete implementation.
package ports

// Filter is the capability set every redaction strategy exposes:
// detect, redact, add a word, and bulk-load a word list.
//
// Implementations are single-owner. They may be shared by concurrent readers
// only while nobody calls AddWord or BulkLoad; mixed use needs an external
// reader/writer lock (see app.Guard).
type Filter interface {
	// ContainsDisallowed reports whether text holds at least one disallowed
	// span under the strategy's matching rule. Matching is case-insensitive.
	// It never mutates the filter.
	ContainsDisallowed(text string) bool

	// Redact returns a copy of text with the same byte length in which every
	// byte of every matched span is replaced by the redaction character.
	// Bytes outside matched spans are preserved exactly.
	Redact(text string) string

	// AddWord lowercases word and inserts it. Adding a known word is a no-op.
	AddWord(word string)

	// BulkLoad reads one entry per line from src, skipping blank lines.
	// It returns how many entries were accepted. An unavailable source is
	// reported and returned as an error, but prior state is kept and the
	// filter stays usable.
	BulkLoad(src WordSource) (int, error)
}

// Span is a half-open byte range [Start, End) of a matched region.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// SpanFinder exposes the spans a filter would redact, in discovery order.
// For every implementer Redact(text) equals masking Spans(text).
type SpanFinder interface {
	Spans(text string) []Span
}

// KeywordMatcher finds literal keywords in content in a single pass
// (Aho-Corasick), regardless of how many keywords are in the set.
// Content is matched as-is; the caller folds case first.
type KeywordMatcher interface {
	// Rebuild replaces the keyword set and reconstructs the automaton.
	Rebuild(keywords []string)

	// MatchAny reports whether at least one keyword occurs in content.
	MatchAny(content string) bool

	// Match returns each distinct keyword found in content, in order of
	// first report. Returns nil when nothing matches.
	Match(content string) []string
}
