// Package trie implements the prefix tree used to prune the board search.
// Nodes live in a single arena and refer to each other by index, the same
// way the gaddag and kwg structures address their node arrays.
package trie

import (
	"sort"
)

// NodeIdx is the position of a node in the arena. The root is always 0.
type NodeIdx uint32

const rootIdx NodeIdx = 0

// An arc leads from a node to its child for a single letter.
type arc struct {
	letter byte
	dest   NodeIdx
}

type node struct {
	// arcs are kept sorted by letter.
	arcs    []arc
	accepts bool
}

// Trie is a set of words that answers exact-membership and prefix queries
// in time proportional to the length of the query. It is not safe to Insert
// concurrently, but once built it can be read from any number of goroutines.
type Trie struct {
	nodes    []node
	numWords int
}

// New returns an empty trie holding just the root node.
func New() *Trie {
	return &Trie{nodes: []node{{}}}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func (t *Trie) containsArc(n NodeIdx, letter byte) (NodeIdx, bool) {
	for _, a := range t.nodes[n].arcs {
		if a.letter == letter {
			return a.dest, true
		}
		if a.letter > letter {
			break
		}
	}
	return 0, false
}

// addArc returns the child of n for letter, creating it if needed.
func (t *Trie) addArc(n NodeIdx, letter byte) NodeIdx {
	if dest, ok := t.containsArc(n, letter); ok {
		return dest
	}
	dest := NodeIdx(len(t.nodes))
	t.nodes = append(t.nodes, node{})
	arcs := t.nodes[n].arcs
	i := sort.Search(len(arcs), func(i int) bool { return arcs[i].letter > letter })
	arcs = append(arcs, arc{})
	copy(arcs[i+1:], arcs[i:])
	arcs[i] = arc{letter: letter, dest: dest}
	t.nodes[n].arcs = arcs
	return dest
}

// Insert adds word to the trie. Letters are folded to upper case. Inserting
// the empty string marks the root itself as a word.
func (t *Trie) Insert(word string) {
	n := rootIdx
	for i := 0; i < len(word); i++ {
		n = t.addArc(n, upper(word[i]))
	}
	if !t.nodes[n].accepts {
		t.nodes[n].accepts = true
		t.numWords++
	}
}

// walk follows s from the root and reports the node it ends on.
func (t *Trie) walk(s string) (NodeIdx, bool) {
	n := rootIdx
	for i := 0; i < len(s); i++ {
		var ok bool
		n, ok = t.containsArc(n, upper(s[i]))
		if !ok {
			return 0, false
		}
	}
	return n, true
}

// HasWord returns true only if word was inserted in full. Proper prefixes of
// stored words that were never inserted themselves are not words.
func (t *Trie) HasWord(word string) bool {
	n, ok := t.walk(word)
	return ok && t.nodes[n].accepts
}

// HasPrefix returns true if some stored word starts with prefix. The empty
// prefix is always valid, even for an empty trie.
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.walk(prefix)
	return ok
}

// Root returns the index of the root node.
func (t *Trie) Root() NodeIdx {
	return rootIdx
}

// Next follows the arc for letter out of n.
func (t *Trie) Next(n NodeIdx, letter byte) (NodeIdx, bool) {
	return t.containsArc(n, upper(letter))
}

// Accepts returns true if the path leading to n spells a stored word.
func (t *Trie) Accepts(n NodeIdx) bool {
	return t.nodes[n].accepts
}

// NumWords returns the number of distinct words stored.
func (t *Trie) NumWords() int {
	return t.numWords
}

// NumNodes returns the size of the node arena, including the root.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// Words returns every stored word in lexicographic order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.numWords)
	var buf []byte
	var traverse func(n NodeIdx)
	traverse = func(n NodeIdx) {
		if t.nodes[n].accepts {
			words = append(words, string(buf))
		}
		for _, a := range t.nodes[n].arcs {
			buf = append(buf, a.letter)
			traverse(a.dest)
			buf = buf[:len(buf)-1]
		}
	}
	traverse(rootIdx)
	return words
}
