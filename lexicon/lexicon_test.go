package lexicon

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/boggle/cache"
	"github.com/domino14/boggle/config"
)

func TestRead(t *testing.T) {
	is := is.New(t)
	lex, err := Read("test", strings.NewReader("cat\nCATS\n\n  dog  \nsea shore\n"))
	is.NoErr(err)
	is.Equal(lex.Name(), "test")
	is.Equal(lex.NumWords(), 4)
	is.Equal(lex.Trie().Words(), []string{"CAT", "CATS", "DOG", "SEA"})
	is.True(lex.HasWord("cat"))
	is.True(lex.HasPrefix("DO"))
	is.True(!lex.HasWord("SHORE"))
	is.Equal(lex.Skipped(), 0)
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	lex, err := Load("testdata/short.txt")
	is.NoErr(err)
	is.Equal(lex.Name(), "short")
	// café and x-ray are dropped; straße folds to STRASSE.
	is.Equal(lex.Trie().Words(), []string{"AT", "CAT", "CATS", "DOG", "STRASSE"})
	is.Equal(lex.Skipped(), 2)
}

func TestLoadMissing(t *testing.T) {
	is := is.New(t)
	_, err := Load("testdata/nope.txt")
	is.True(err != nil)
}

func TestChecksum(t *testing.T) {
	is := is.New(t)
	a, err := Read("a", strings.NewReader("cat\ndog\n"))
	is.NoErr(err)
	b, err := Read("b", strings.NewReader("CAT\n\nDOG definition\n"))
	is.NoErr(err)
	c, err := Read("c", strings.NewReader("cat\ndogs\n"))
	is.NoErr(err)
	is.Equal(a.Checksum(), b.Checksum())
	is.True(a.Checksum() != c.Checksum())
}

func TestGetCaches(t *testing.T) {
	is := is.New(t)
	cache.CreateGlobalObjectCache()
	cfg := config.DefaultConfig()
	l1, err := Get(cfg, "testdata/short.txt")
	is.NoErr(err)
	l2, err := Get(cfg, "testdata/short.txt")
	is.NoErr(err)
	is.True(l1 == l2)

	l3, err := Reload(cfg, "testdata/short.txt")
	is.NoErr(err)
	is.True(l1 != l3)
	is.Equal(l1.Checksum(), l3.Checksum())
}
