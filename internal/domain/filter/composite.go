package filter

import (
	"fmt"
	"log/slog"

	"github.com/corey/bleep/internal/ports"
)

// Mode selects how CompositeFilter combines its strategies when redacting.
type Mode int

const (
	// ModePipeline feeds each enabled strategy the previous one's output.
	// A span masked early no longer spells its word, so later strategies
	// usually skip it.
	ModePipeline Mode = iota

	// ModeUnion runs every enabled strategy on the original text and masks
	// the union of their spans.
	ModeUnion
)

// String returns the mode's flag/config name.
func (m Mode) String() string {
	switch m {
	case ModePipeline:
		return "pipeline"
	case ModeUnion:
		return "union"
	default:
		return "unknown"
	}
}

// ParseMode maps a name from String back to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "pipeline", "":
		return ModePipeline, nil
	case "union":
		return ModeUnion, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want pipeline or union)", name)
	}
}

// CompositeFilter owns one filter per strategy and runs the enabled ones in
// the fixed order exact, pattern, trie. Words always reach all three, so
// enabling a strategy later needs no reload.
type CompositeFilter struct {
	exact   *ExactMatchFilter
	pattern *PatternFilter
	trie    *TrieFilter

	useExact   bool
	usePattern bool
	useTrie    bool
	mode       Mode

	mask byte
	log  *slog.Logger
}

var (
	_ ports.Filter     = (*CompositeFilter)(nil)
	_ ports.SpanFinder = (*CompositeFilter)(nil)
)

// NewCompositeFilter builds all three strategies from cfg, all enabled,
// in pipeline mode.
func NewCompositeFilter(cfg Config) *CompositeFilter {
	cfg = cfg.withDefaults()
	return &CompositeFilter{
		exact:      NewExactMatchFilter(cfg),
		pattern:    NewPatternFilter(cfg),
		trie:       NewTrieFilter(cfg),
		useExact:   true,
		usePattern: true,
		useTrie:    true,
		mask:       cfg.Mask,
		log:        cfg.Logger,
	}
}

// Configure enables or disables each strategy. It takes effect on the next
// call to ContainsDisallowed, Redact or Spans.
func (c *CompositeFilter) Configure(exact, pattern, trie bool) {
	c.useExact, c.usePattern, c.useTrie = exact, pattern, trie
}

// Enabled reports which strategies participate.
func (c *CompositeFilter) Enabled() (exact, pattern, trie bool) {
	return c.useExact, c.usePattern, c.useTrie
}

// SetMode switches between pipeline and union redaction.
func (c *CompositeFilter) SetMode(m Mode) {
	c.mode = m
}

// Mode returns the current redaction mode.
func (c *CompositeFilter) Mode() Mode {
	return c.mode
}

// Exact returns the owned exact-match strategy.
func (c *CompositeFilter) Exact() *ExactMatchFilter { return c.exact }

// Pattern returns the owned pattern strategy.
func (c *CompositeFilter) Pattern() *PatternFilter { return c.pattern }

// Trie returns the owned trie strategy.
func (c *CompositeFilter) Trie() *TrieFilter { return c.trie }

// stage is what the composite needs from each strategy.
type stage interface {
	ports.Filter
	ports.SpanFinder
}

func (c *CompositeFilter) stages() []stage {
	s := make([]stage, 0, 3)
	if c.useExact {
		s = append(s, c.exact)
	}
	if c.usePattern {
		s = append(s, c.pattern)
	}
	if c.useTrie {
		s = append(s, c.trie)
	}
	return s
}

// ContainsDisallowed short-circuits across enabled strategies in order.
func (c *CompositeFilter) ContainsDisallowed(text string) bool {
	for _, s := range c.stages() {
		if s.ContainsDisallowed(text) {
			return true
		}
	}
	return false
}

// Spans returns every span the current mode masks. In pipeline mode each
// strategy's spans are computed on the output of the strategies before it.
func (c *CompositeFilter) Spans(text string) []ports.Span {
	var all []ports.Span
	current := text
	for _, s := range c.stages() {
		spans := s.Spans(current)
		all = append(all, spans...)
		if c.mode == ModePipeline {
			current = Mask(current, spans, c.mask)
		}
	}
	return all
}

// Redact masks per the current mode.
func (c *CompositeFilter) Redact(text string) string {
	if c.mode == ModeUnion {
		return Mask(text, c.Spans(text), c.mask)
	}
	out := text
	for _, s := range c.stages() {
		out = s.Redact(out)
	}
	return out
}

// AddWord adds word to every strategy, enabled or not.
func (c *CompositeFilter) AddWord(word string) {
	c.exact.AddWord(word)
	c.pattern.AddWord(word)
	c.trie.AddWord(word)
}

// AddPattern adds an explicit variant expression to the pattern strategy.
func (c *CompositeFilter) AddPattern(expr string) error {
	return c.pattern.AddPattern(expr)
}

// BulkLoad reads src once and feeds every entry to all three strategies,
// so one-shot streams load everywhere. It returns the number of entries read.
func (c *CompositeFilter) BulkLoad(src ports.WordSource) (int, error) {
	entries, err := readEntries(src, c.log)
	c.exact.load(entries)
	c.pattern.load(entries)
	c.trie.load(entries)
	return len(entries), err
}
