package filter

import (
	"log/slog"
	"strings"

	"github.com/corey/bleep/internal/domain/lexicon"
	"github.com/corey/bleep/internal/ports"
)

// ExactMatchFilter finds disallowed words as plain substrings of the folded
// text. Redaction costs O(words × len(text)): simple, and only suited to
// small lists.
type ExactMatchFilter struct {
	words   *lexicon.WordSet
	matcher ports.KeywordMatcher
	mask    byte
	log     *slog.Logger
}

var (
	_ ports.Filter     = (*ExactMatchFilter)(nil)
	_ ports.SpanFinder = (*ExactMatchFilter)(nil)
)

// NewExactMatchFilter builds the filter from cfg.Words.
func NewExactMatchFilter(cfg Config) *ExactMatchFilter {
	cfg = cfg.withDefaults()
	f := &ExactMatchFilter{
		words: lexicon.NewWordSet(cfg.Words...),
		mask:  cfg.Mask,
		log:   cfg.Logger,
	}
	if cfg.Matcher != nil {
		f.matcher = cfg.Matcher()
		f.matcher.Rebuild(f.words.Words())
	}
	return f
}

// ContainsDisallowed reports whether any word occurs in text.
func (f *ExactMatchFilter) ContainsDisallowed(text string) bool {
	lower := lexicon.Fold(text)
	if f.matcher != nil {
		return f.matcher.MatchAny(lower)
	}
	for _, w := range f.words.Words() {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Matches returns the distinct words occurring in text.
func (f *ExactMatchFilter) Matches(text string) []string {
	lower := lexicon.Fold(text)
	if f.matcher != nil {
		return f.matcher.Match(lower)
	}
	var found []string
	for _, w := range f.words.Words() {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	return found
}

// Spans lists, word by word, every non-overlapping occurrence scanning left
// to right. Occurrences of one word never overlap each other; occurrences of
// different words may.
func (f *ExactMatchFilter) Spans(text string) []ports.Span {
	lower := lexicon.Fold(text)
	var spans []ports.Span
	for _, w := range f.words.Words() {
		pos := 0
		for {
			i := strings.Index(lower[pos:], w)
			if i < 0 {
				break
			}
			start := pos + i
			spans = append(spans, ports.Span{Start: start, End: start + len(w)})
			pos = start + len(w)
		}
	}
	return spans
}

// Redact masks every span Spans reports.
func (f *ExactMatchFilter) Redact(text string) string {
	return Mask(text, f.Spans(text), f.mask)
}

// AddWord inserts the folded word.
func (f *ExactMatchFilter) AddWord(word string) {
	if f.words.Add(word) {
		f.rebuild()
	}
}

// BulkLoad adds every non-blank line of src as a word.
func (f *ExactMatchFilter) BulkLoad(src ports.WordSource) (int, error) {
	entries, err := readEntries(src, f.log)
	n := f.load(entries)
	return n, err
}

// Words returns the current word list in sorted order.
func (f *ExactMatchFilter) Words() []string {
	return f.words.Words()
}

func (f *ExactMatchFilter) load(entries []string) int {
	grew := false
	for _, e := range entries {
		if f.words.Add(e) {
			grew = true
		}
	}
	if grew {
		f.rebuild()
	}
	return len(entries)
}

func (f *ExactMatchFilter) rebuild() {
	if f.matcher != nil {
		f.matcher.Rebuild(f.words.Words())
	}
}
