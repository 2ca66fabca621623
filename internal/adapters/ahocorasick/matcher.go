// Package ahocorasick implements ports.KeywordMatcher with an Aho-Corasick
// automaton. It wraps the petar-dambovaliev/aho-corasick library for
// O(n + m + z) matching.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Matcher holds a compiled automaton over a literal keyword list.
// Rebuild compiles; MatchAny and Match scan.
type Matcher struct {
	automaton aho.AhoCorasick
	keywords  []string
	built     bool
}

// New returns a matcher compiled from keywords.
func New(keywords []string) *Matcher {
	m := &Matcher{}
	m.Rebuild(keywords)
	return m
}

// Rebuild replaces the automaton with one compiled from keywords.
// Empty keywords are dropped: they would match everywhere.
func (m *Matcher) Rebuild(keywords []string) {
	m.keywords = m.keywords[:0]
	for _, kw := range keywords {
		if kw != "" {
			m.keywords = append(m.keywords, kw)
		}
	}
	if len(m.keywords) == 0 {
		m.built = false
		return
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(m.keywords)
	m.built = true
}

// MatchAny reports whether any keyword occurs in content. It stops at the
// first match the overlapping iterator reports.
func (m *Matcher) MatchAny(content string) bool {
	if !m.built || len(content) == 0 {
		return false
	}
	iter := m.automaton.IterOverlappingByte([]byte(content))
	return iter.Next() != nil
}

// Match returns all distinct keywords found in content.
func (m *Matcher) Match(content string) []string {
	if !m.built {
		return nil
	}
	iter := m.automaton.IterOverlappingByte([]byte(content))

	// Deduplicate by keyword
	seen := make(map[int]bool)
	var result []string
	for next := iter.Next(); next != nil; next = iter.Next() {
		idx := next.Pattern()
		if !seen[idx] {
			seen[idx] = true
			result = append(result, m.keywords[idx])
		}
	}
	return result
}

// Len returns the number of keywords in the automaton.
func (m *Matcher) Len() int {
	return len(m.keywords)
}
