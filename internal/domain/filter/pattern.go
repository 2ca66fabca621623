package filter

import (
	"log/slog"
	"strings"

	"github.com/corey/bleep/internal/domain/lexicon"
	"github.com/corey/bleep/internal/ports"
)

// PatternFilter matches compiled regexps against the folded text. Every word
// contributes its literal pattern and, when it has an interior vowel, a
// variant that accepts other vowels or '*' in those positions.
type PatternFilter struct {
	patterns *lexicon.PatternSet
	mask     byte
	log      *slog.Logger
}

var (
	_ ports.Filter     = (*PatternFilter)(nil)
	_ ports.SpanFinder = (*PatternFilter)(nil)
)

// NewPatternFilter compiles cfg.Words then cfg.Variants. Malformed variants
// are reported and skipped.
func NewPatternFilter(cfg Config) *PatternFilter {
	cfg = cfg.withDefaults()
	f := &PatternFilter{
		patterns: lexicon.NewPatternSet(),
		mask:     cfg.Mask,
		log:      cfg.Logger,
	}
	for _, w := range cfg.Words {
		f.AddWord(w)
	}
	for _, v := range cfg.Variants {
		_ = f.AddPattern(v)
	}
	return f
}

// ContainsDisallowed reports whether any pattern matches text.
func (f *PatternFilter) ContainsDisallowed(text string) bool {
	lower := lexicon.Fold(text)
	for _, p := range f.patterns.Patterns() {
		if p.Re.MatchString(lower) {
			return true
		}
	}
	return false
}

// Spans lists, pattern by pattern, the successive leftmost non-overlapping
// matches. A region consumed by one pattern can still be matched by a later
// one. Empty matches are dropped.
func (f *PatternFilter) Spans(text string) []ports.Span {
	lower := lexicon.Fold(text)
	var spans []ports.Span
	for _, p := range f.patterns.Patterns() {
		for _, loc := range p.Re.FindAllStringIndex(lower, -1) {
			if loc[1] > loc[0] {
				spans = append(spans, ports.Span{Start: loc[0], End: loc[1]})
			}
		}
	}
	return spans
}

// Redact masks every span Spans reports.
func (f *PatternFilter) Redact(text string) string {
	return Mask(text, f.Spans(text), f.mask)
}

// AddWord adds the literal pattern for word and its vowel variant, if any.
func (f *PatternFilter) AddWord(word string) {
	w := lexicon.Normalize(word)
	if w == "" {
		return
	}
	f.patterns.AddLiteral(w)
	if expr, ok := lexicon.VariantOf(w); ok {
		_ = f.AddPattern(expr)
	}
}

// AddPattern compiles expr as a case-insensitive variant pattern. A compile
// failure is logged and returned as *PatternError; the set is unchanged.
func (f *PatternFilter) AddPattern(expr string) error {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}
	if _, err := f.patterns.Add(expr); err != nil {
		f.log.Warn("malformed pattern skipped", "pattern", expr, "err", err)
		return &PatternError{Expr: expr, Err: err}
	}
	return nil
}

// BulkLoad reads src one entry per line. Lines with regexp metacharacters
// are pattern specs; the rest are words. It returns how many entries
// compiled.
func (f *PatternFilter) BulkLoad(src ports.WordSource) (int, error) {
	entries, err := readEntries(src, f.log)
	n := f.load(entries)
	return n, err
}

// Exprs returns the compiled expressions in match order.
func (f *PatternFilter) Exprs() []string {
	return f.patterns.Exprs()
}

func (f *PatternFilter) load(entries []string) int {
	n := 0
	for _, e := range entries {
		if lexicon.HasMeta(e) {
			if f.AddPattern(e) != nil {
				continue
			}
		} else {
			f.AddWord(e)
		}
		n++
	}
	return n
}
