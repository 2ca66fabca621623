package lexicon

import (
	"regexp"
	"strings"
)

// vowelClass replaces an interior vowel run in a generated variant. The '*'
// catches the usual glyph substitution ("f*ck").
const vowelClass = "[aeiou*]+"

// Pattern is one compiled matcher and the expression it was built from.
type Pattern struct {
	Expr string
	Re   *regexp.Regexp
}

// PatternSet is an ordered list of case-insensitive patterns. Order only
// decides which pattern reports a match first; expressions are unique.
type PatternSet struct {
	patterns []Pattern
	seen     map[string]struct{}
}

// NewPatternSet returns an empty set.
func NewPatternSet() *PatternSet {
	return &PatternSet{seen: make(map[string]struct{})}
}

// Add compiles expr case-insensitively and appends it. A duplicate expr is a
// no-op returning false, nil. A malformed expr returns the compile error and
// leaves the set unchanged.
func (s *PatternSet) Add(expr string) (bool, error) {
	if _, ok := s.seen[expr]; ok {
		return false, nil
	}
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return false, err
	}
	s.seen[expr] = struct{}{}
	s.patterns = append(s.patterns, Pattern{Expr: expr, Re: re})
	return true, nil
}

// AddLiteral adds word as a quoted literal pattern.
func (s *PatternSet) AddLiteral(word string) bool {
	// QuoteMeta output always compiles.
	added, _ := s.Add(regexp.QuoteMeta(word))
	return added
}

// Len returns the number of compiled patterns.
func (s *PatternSet) Len() int {
	return len(s.patterns)
}

// Patterns returns the patterns in insertion order. The slice is shared;
// callers must not modify it.
func (s *PatternSet) Patterns() []Pattern {
	return s.patterns
}

// Exprs returns the source expressions in insertion order.
func (s *PatternSet) Exprs() []string {
	out := make([]string, len(s.patterns))
	for i, p := range s.patterns {
		out[i] = p.Expr
	}
	return out
}

// HasMeta reports whether line contains regexp metacharacters, i.e. whether
// it reads as a regular expression rather than a plain word.
func HasMeta(line string) bool {
	return regexp.QuoteMeta(line) != line
}

// VariantOf derives the spelling-variant expression for word: every vowel run
// strictly inside the word becomes a vowel-or-wildcard class, so
// "fuck" yields "f[aeiou*]+ck". The first and last byte are kept literal.
// ok is false when the word has no interior vowel.
func VariantOf(word string) (expr string, ok bool) {
	n := len(word)
	if n < 3 {
		return "", false
	}

	var b strings.Builder
	b.WriteString(regexp.QuoteMeta(word[:1]))
	seg := 1
	i := 1
	for i < n-1 {
		if !isVowel(word[i]) {
			i++
			continue
		}
		b.WriteString(regexp.QuoteMeta(word[seg:i]))
		for i < n-1 && isVowel(word[i]) {
			i++
		}
		b.WriteString(vowelClass)
		seg = i
		ok = true
	}
	if !ok {
		return "", false
	}
	b.WriteString(regexp.QuoteMeta(word[seg:]))
	return b.String(), true
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
