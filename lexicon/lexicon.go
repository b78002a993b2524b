// Package lexicon turns a word list into a dictionary the solver can search.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/domino14/boggle/cache"
	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/trie"
)

// Lexicon is a named, read-only dictionary.
type Lexicon struct {
	name     string
	trie     *trie.Trie
	checksum uint64
	skipped  int
}

func (l *Lexicon) Name() string {
	return l.name
}

// Trie returns the prefix tree holding the words. It must not be modified.
func (l *Lexicon) Trie() *trie.Trie {
	return l.trie
}

func (l *Lexicon) HasWord(word string) bool {
	return l.trie.HasWord(word)
}

func (l *Lexicon) HasPrefix(prefix string) bool {
	return l.trie.HasPrefix(prefix)
}

func (l *Lexicon) NumWords() int {
	return l.trie.NumWords()
}

// Checksum is a hash of the normalized word list, in file order. Two
// lexica with the same checksum hold the same words.
func (l *Lexicon) Checksum() uint64 {
	return l.checksum
}

// Skipped is the number of entries that were dropped because they contain
// something other than the letters A-Z.
func (l *Lexicon) Skipped() int {
	return l.skipped
}

func onlyLetters(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}

// Read builds a lexicon from r, which holds one word per line. Only the first
// field of every line is used, so lists with definitions after the word
// work too. Blank lines are ignored.
func Read(name string, r io.Reader) (*Lexicon, error) {
	st := time.Now()
	upper := cases.Upper(language.Und)
	h := xxhash.New()
	lex := &Lexicon{name: name, trie: trie.New()}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := upper.String(fields[0])
		if !onlyLetters(word) {
			lex.skipped++
			continue
		}
		lex.trie.Insert(word)
		h.Write([]byte(word))
		h.Write([]byte{'\n'})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", name, err)
	}
	lex.checksum = h.Sum64()

	log.Debug().
		Str("lexicon", name).
		Int("num-words", lex.trie.NumWords()).
		Int("num-nodes", lex.trie.NumNodes()).
		Int("skipped", lex.skipped).
		Dur("elapsed", time.Since(st)).
		Msg("loaded-lexicon")
	return lex, nil
}

// Load reads the word list at path. The lexicon is named after the file.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Read(name, f)
}

func cacheKey(path string) string {
	return "lexicon:" + path
}

func cacheLoadFunc(cfg *config.Config, key string) (any, error) {
	return Load(strings.TrimPrefix(key, "lexicon:"))
}

// Get returns the lexicon at path, loading it only the first time it is
// asked for.
func Get(cfg *config.Config, path string) (*Lexicon, error) {
	obj, err := cache.Load(cfg, cacheKey(path), cacheLoadFunc)
	if err != nil {
		return nil, err
	}
	lex, ok := obj.(*Lexicon)
	if !ok {
		return nil, fmt.Errorf("cached object for %s is not a lexicon", path)
	}
	return lex, nil
}

// Reload drops any cached copy of the lexicon at path and loads it again.
func Reload(cfg *config.Config, path string) (*Lexicon, error) {
	cache.Forget(cacheKey(path))
	return Get(cfg, path)
}
