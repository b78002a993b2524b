package trie

import (
	"testing"

	"github.com/matryer/is"
)

func makeTrie(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

type testpair struct {
	query string
	found bool
}

var hasWordTests = []testpair{
	{"CAT", true},
	{"CATS", true},
	{"cat", true},
	{"CA", false},
	{"C", false},
	{"", false},
	{"CATSS", false},
	{"DOG", false},
	{"AT", true},
	{"ATE", false},
}

var hasPrefixTests = []testpair{
	{"", true},
	{"C", true},
	{"CA", true},
	{"CAT", true},
	{"CATS", true},
	{"ca", true},
	{"CATSS", false},
	{"D", false},
	{"AT", true},
	{"ATE", false},
	{"T", false},
}

func TestHasWord(t *testing.T) {
	is := is.New(t)
	tr := makeTrie("CAT", "CATS", "AT")
	for _, pair := range hasWordTests {
		is.Equal(tr.HasWord(pair.query), pair.found) // HasWord mismatch
	}
}

func TestHasPrefix(t *testing.T) {
	is := is.New(t)
	tr := makeTrie("CAT", "CATS", "AT")
	for _, pair := range hasPrefixTests {
		is.Equal(tr.HasPrefix(pair.query), pair.found) // HasPrefix mismatch
	}
}

func TestEmptyTrie(t *testing.T) {
	is := is.New(t)
	tr := New()
	is.True(tr.HasPrefix(""))
	is.True(!tr.HasWord(""))
	is.True(!tr.HasPrefix("A"))
	is.Equal(tr.NumWords(), 0)
	is.Equal(tr.NumNodes(), 1)
	is.Equal(len(tr.Words()), 0)
}

func TestInsertEmptyString(t *testing.T) {
	is := is.New(t)
	tr := New()
	tr.Insert("")
	is.True(tr.HasWord(""))
	is.Equal(tr.NumWords(), 1)
	is.Equal(tr.Words(), []string{""})
}

func TestEveryPrefixIsValid(t *testing.T) {
	is := is.New(t)
	words := []string{"QUIXOTIC", "QUIZ", "ZEBRA", "ZEBRAS", "APPLE", "APPLY"}
	tr := makeTrie(words...)
	for _, w := range words {
		is.True(tr.HasWord(w))
		for i := 0; i <= len(w); i++ {
			is.True(tr.HasPrefix(w[:i]))
		}
	}
}

func TestInsertIdempotent(t *testing.T) {
	is := is.New(t)
	tr := makeTrie("CAT", "DOG")
	nodes := tr.NumNodes()
	tr.Insert("CAT")
	tr.Insert("cat")
	is.Equal(tr.NumWords(), 2)
	is.Equal(tr.NumNodes(), nodes)
	is.Equal(tr.Words(), []string{"CAT", "DOG"})
	is.True(tr.HasWord("CAT"))
}

func TestWordsSorted(t *testing.T) {
	is := is.New(t)
	tr := makeTrie("zoo", "ant", "ants", "bee", "an")
	is.Equal(tr.Words(), []string{"AN", "ANT", "ANTS", "BEE", "ZOO"})
	is.Equal(tr.NumWords(), 5)
}

func TestCursor(t *testing.T) {
	is := is.New(t)
	tr := makeTrie("CAT", "CATS")
	n := tr.Root()
	is.True(!tr.Accepts(n))
	var ok bool
	for _, c := range []byte("cat") {
		n, ok = tr.Next(n, c)
		is.True(ok)
	}
	is.True(tr.Accepts(n))
	_, ok = tr.Next(n, 'X')
	is.True(!ok)
	n, ok = tr.Next(n, 'S')
	is.True(ok)
	is.True(tr.Accepts(n))
}

func BenchmarkHasPrefix(b *testing.B) {
	tr := makeTrie("ABACUS", "ABANDON", "ABATE", "ABBEY", "ABBOT", "ABDOMEN")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.HasPrefix("ABDOM")
	}
}
