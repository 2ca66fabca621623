package lexicon

import "sort"

// WordSet is the normalized set of disallowed words. Duplicates collapse.
// A sorted copy is kept alongside the map so scans visit words in a stable
// order without re-sorting per call.
type WordSet struct {
	words  map[string]struct{}
	sorted []string
}

// NewWordSet builds a set from words, normalizing each and dropping blanks.
func NewWordSet(words ...string) *WordSet {
	s := &WordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add normalizes and inserts word. Returns true only when the set grew.
func (s *WordSet) Add(word string) bool {
	w := Normalize(word)
	if w == "" {
		return false
	}
	if _, ok := s.words[w]; ok {
		return false
	}
	s.words[w] = struct{}{}

	i := sort.SearchStrings(s.sorted, w)
	s.sorted = append(s.sorted, "")
	copy(s.sorted[i+1:], s.sorted[i:])
	s.sorted[i] = w
	return true
}

// Contains reports whether the normalized word is in the set.
func (s *WordSet) Contains(word string) bool {
	_, ok := s.words[Normalize(word)]
	return ok
}

// Len returns the number of distinct words.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Words returns the words in sorted order. The slice is shared; callers must
// not modify it.
func (s *WordSet) Words() []string {
	return s.sorted
}
