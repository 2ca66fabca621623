package filter

import (
	"log/slog"

	"github.com/corey/bleep/internal/domain/lexicon"
	"github.com/corey/bleep/internal/ports"
)

// TrieFilter walks a prefix tree from every offset of the folded text.
// Redaction is greedy: at each offset the longest word wins, and scanning
// resumes after it, so a shorter word that prefixes a longer one never
// leaves a partial mask behind.
type TrieFilter struct {
	trie *lexicon.Trie
	mask byte
	log  *slog.Logger
}

var (
	_ ports.Filter     = (*TrieFilter)(nil)
	_ ports.SpanFinder = (*TrieFilter)(nil)
)

// NewTrieFilter builds the trie from cfg.Words.
func NewTrieFilter(cfg Config) *TrieFilter {
	cfg = cfg.withDefaults()
	f := &TrieFilter{
		trie: lexicon.NewTrie(),
		mask: cfg.Mask,
		log:  cfg.Logger,
	}
	for _, w := range cfg.Words {
		f.AddWord(w)
	}
	return f
}

// ContainsDisallowed returns at the first offset where a walk reaches an
// end-of-word node.
func (f *TrieFilter) ContainsDisallowed(text string) bool {
	lower := lexicon.Fold(text)
	for i := 0; i < len(lower); i++ {
		if f.trie.MatchAt(lower, i) {
			return true
		}
	}
	return false
}

// Spans lists the longest match at each offset, skipping past every match.
func (f *TrieFilter) Spans(text string) []ports.Span {
	lower := lexicon.Fold(text)
	var spans []ports.Span
	for i := 0; i < len(lower); {
		n := f.trie.LongestMatchAt(lower, i)
		if n == 0 {
			i++
			continue
		}
		spans = append(spans, ports.Span{Start: i, End: i + n})
		i += n
	}
	return spans
}

// Redact masks every span Spans reports.
func (f *TrieFilter) Redact(text string) string {
	return Mask(text, f.Spans(text), f.mask)
}

// AddWord inserts the folded word into the trie.
func (f *TrieFilter) AddWord(word string) {
	f.trie.Insert(lexicon.Normalize(word))
}

// BulkLoad inserts every non-blank line of src.
func (f *TrieFilter) BulkLoad(src ports.WordSource) (int, error) {
	entries, err := readEntries(src, f.log)
	n := f.load(entries)
	return n, err
}

// Len returns the number of words in the trie.
func (f *TrieFilter) Len() int {
	return f.trie.Len()
}

func (f *TrieFilter) load(entries []string) int {
	for _, e := range entries {
		f.AddWord(e)
	}
	return len(entries)
}
