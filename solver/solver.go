// Package solver finds every dictionary word that can be traced on a board.
//
// The search is a depth-first walk from every cell. A path may move to any
// of the up to eight cells around its last cell, but may not reuse a cell.
// Each extension of the path advances one node in the word graph, so a path
// whose letters are not a prefix of any word is abandoned right away.
package solver

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/trie"
)

// MinWordLength is the length of the shortest word we report.
const MinWordLength = 3

// WordGraph is the view of the dictionary the search needs. *trie.Trie
// implements it.
type WordGraph interface {
	Root() trie.NodeIdx
	Next(n trie.NodeIdx, letter byte) (trie.NodeIdx, bool)
	Accepts(n trie.NodeIdx) bool
}

// WordSet is a set of found words.
type WordSet map[string]struct{}

func (ws WordSet) Add(word string) {
	ws[word] = struct{}{}
}

func (ws WordSet) Has(word string) bool {
	_, ok := ws[word]
	return ok
}

func (ws WordSet) Len() int {
	return len(ws)
}

// Sorted returns the words in lexicographic order.
func (ws WordSet) Sorted() []string {
	words := make([]string, 0, len(ws))
	for w := range ws {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// search holds the state of one traversal. The path and the letters along it
// grow and shrink together as the walk descends and backtracks.
type search struct {
	ctx    context.Context
	done   <-chan struct{}
	board  *board.Board
	graph  WordGraph
	path   []board.Cell
	word   []byte
	onPath []bool
	words  WordSet
	visits int
}

func (s *search) push(c board.Cell) {
	s.path = append(s.path, c)
	s.word = append(s.word, s.board.LetterAt(c))
	s.onPath[c.Row*s.board.Dim()+c.Col] = true
}

func (s *search) pop() {
	c := s.path[len(s.path)-1]
	s.onPath[c.Row*s.board.Dim()+c.Col] = false
	s.path = s.path[:len(s.path)-1]
	s.word = s.word[:len(s.word)-1]
}

// visit extends the current path with c. parent is the graph node spelled by
// the path so far.
func (s *search) visit(c board.Cell, parent trie.NodeIdx) error {
	if s.done != nil {
		select {
		case <-s.done:
			return s.ctx.Err()
		default:
		}
	}
	s.visits++
	s.push(c)
	defer s.pop()

	n, ok := s.graph.Next(parent, s.board.LetterAt(c))
	if !ok {
		return nil
	}
	if len(s.word) >= MinWordLength && s.graph.Accepts(n) {
		s.words.Add(string(s.word))
	}
	for _, adj := range s.board.Neighbors(c) {
		if s.onPath[adj.Row*s.board.Dim()+adj.Col] {
			continue
		}
		if err := s.visit(adj, n); err != nil {
			return err
		}
	}
	return nil
}

// FindAllWords returns every word of at least MinWordLength letters in g
// that can be traced on b. The result does not depend on the order in which
// cells are explored.
func FindAllWords(b *board.Board, g WordGraph) WordSet {
	// A background context is never cancelled, so there is no error.
	ws, _ := FindAllWordsContext(context.Background(), b, g)
	return ws
}

// FindAllWordsContext is FindAllWords with a check for cancellation before
// every step. If ctx is done the words found so far are returned along with
// ctx.Err().
func FindAllWordsContext(ctx context.Context, b *board.Board, g WordGraph) (WordSet, error) {
	dim := b.Dim()
	s := &search{
		ctx:    ctx,
		done:   ctx.Done(),
		board:  b,
		graph:  g,
		path:   make([]board.Cell, 0, dim*dim),
		word:   make([]byte, 0, dim*dim),
		onPath: make([]bool, dim*dim),
		words:  make(WordSet),
	}
	st := time.Now()
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if err := s.visit(board.Cell{Row: r, Col: c}, g.Root()); err != nil {
				log.Debug().Err(err).Int("found", s.words.Len()).Msg("search-interrupted")
				return s.words, err
			}
		}
	}
	log.Debug().
		Int("dim", dim).
		Int("visits", s.visits).
		Int("found", s.words.Len()).
		Dur("elapsed", time.Since(st)).
		Msg("search-done")
	return s.words, nil
}
