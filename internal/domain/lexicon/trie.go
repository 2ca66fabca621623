package lexicon

// nodeID indexes Trie.nodes. The root is always node 0.
type nodeID int32

const root nodeID = 0

// node is one arena entry. Children are owned exclusively by their parent,
// so the arena always forms a single tree with no shared nodes or cycles.
type node struct {
	children map[byte]nodeID
	end      bool
}

// Trie is a byte-wise prefix tree over disallowed words, stored as an arena.
// It only grows: there is no delete.
type Trie struct {
	nodes []node
	words int
}

// NewTrie returns a trie holding only the root sentinel.
func NewTrie() *Trie {
	return &Trie{nodes: []node{{}}}
}

// Insert adds word byte by byte and marks its last node end-of-word.
// Returns true when the word was not already present. The empty word is
// rejected: it would match at every offset with length zero.
func (t *Trie) Insert(word string) bool {
	if word == "" {
		return false
	}
	n := root
	for i := 0; i < len(word); i++ {
		n = t.childOrCreate(n, word[i])
	}
	if t.nodes[n].end {
		return false
	}
	t.nodes[n].end = true
	t.words++
	return true
}

// Contains reports whether word was inserted (not merely a prefix).
func (t *Trie) Contains(word string) bool {
	n := root
	for i := 0; i < len(word); i++ {
		next, ok := t.child(n, word[i])
		if !ok {
			return false
		}
		n = next
	}
	return n != root && t.nodes[n].end
}

// MatchAt reports whether any word starts at text[i]. The walk stops at the
// first end-of-word node or the first byte with no child.
func (t *Trie) MatchAt(text string, i int) bool {
	n := root
	for j := i; j < len(text); j++ {
		next, ok := t.child(n, text[j])
		if !ok {
			return false
		}
		n = next
		if t.nodes[n].end {
			return true
		}
	}
	return false
}

// LongestMatchAt returns the length of the longest word that is a prefix of
// text[i:], or 0 when none is. The walk runs until no child matches and keeps
// the last end-of-word position seen.
func (t *Trie) LongestMatchAt(text string, i int) int {
	n := root
	longest := 0
	for j := i; j < len(text); j++ {
		next, ok := t.child(n, text[j])
		if !ok {
			break
		}
		n = next
		if t.nodes[n].end {
			longest = j - i + 1
		}
	}
	return longest
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.words
}

// NodeCount returns the arena size, root included.
func (t *Trie) NodeCount() int {
	return len(t.nodes)
}

func (t *Trie) child(n nodeID, c byte) (nodeID, bool) {
	next, ok := t.nodes[n].children[c]
	return next, ok
}

func (t *Trie) childOrCreate(n nodeID, c byte) nodeID {
	if next, ok := t.nodes[n].children[c]; ok {
		return next
	}
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{})
	if t.nodes[n].children == nil {
		t.nodes[n].children = make(map[byte]nodeID)
	}
	t.nodes[n].children[c] = id
	return id
}
