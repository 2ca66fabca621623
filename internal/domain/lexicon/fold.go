// Package lexicon holds the data structures the redaction strategies scan:
// the folded word set, the ordered compiled pattern list, and the byte trie.
// All types are plain Go values with no locking; owners serialize access.
package lexicon

import "strings"

// Fold lowercases ASCII letters and leaves every other byte untouched, so the
// result always has the same length and byte offsets as s. Multi-byte UTF-8
// sequences are never altered.
func Fold(s string) string {
	i := 0
	for i < len(s) && !isUpper(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if isUpper(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// Normalize trims surrounding whitespace and folds the word.
// Returns "" for blank input; callers treat that as "nothing to add".
func Normalize(word string) string {
	return Fold(strings.TrimSpace(word))
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
