package app

import (
	"sync"

	"github.com/corey/bleep/internal/ports"
)

// Guard serializes access to a filter that is read by many goroutines while
// a reloader adds words to it. Reads share the lock; AddWord and BulkLoad
// take it exclusively.
type Guard struct {
	mu sync.RWMutex
	f  ports.Filter
}

// NewGuard wraps f. The caller must not use f directly afterwards.
func NewGuard(f ports.Filter) *Guard {
	return &Guard{f: f}
}

func (g *Guard) ContainsDisallowed(text string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.ContainsDisallowed(text)
}

func (g *Guard) Redact(text string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.Redact(text)
}

// Spans returns the spans Redact would mask, or nil when the wrapped filter
// does not expose them.
func (g *Guard) Spans(text string) []ports.Span {
	sf, ok := g.f.(ports.SpanFinder)
	if !ok {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sf.Spans(text)
}

func (g *Guard) AddWord(word string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.f.AddWord(word)
}

// BulkLoad holds the write lock for the whole read, so readers never see a
// half-loaded list.
func (g *Guard) BulkLoad(src ports.WordSource) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.BulkLoad(src)
}

// Inspect runs fn with shared access to the wrapped filter.
func (g *Guard) Inspect(fn func(ports.Filter)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.f)
}
