package board

import (
	"fmt"
	"strings"

	"lukechampine.com/frand"
)

// A LetterDistribution says how often each letter should show up on a
// random board, as a count per letter.
type LetterDistribution struct {
	name   string
	counts [26]int
	total  int
}

func newDistribution(name string, dist map[byte]int) LetterDistribution {
	ld := LetterDistribution{name: name}
	for l, n := range dist {
		ld.counts[l-'A'] = n
		ld.total += n
	}
	return ld
}

// UniformDistribution gives every letter the same chance.
func UniformDistribution() LetterDistribution {
	dist := make(map[byte]int, 26)
	for l := byte('A'); l <= 'Z'; l++ {
		dist[l] = 1
	}
	return newDistribution("uniform", dist)
}

// EnglishLetterDistribution follows the tile counts of an English
// crossword game set, without the blanks.
func EnglishLetterDistribution() LetterDistribution {
	return newDistribution("english", map[byte]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2,
		'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
		'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
		'Y': 2, 'Z': 1,
	})
}

// NamedDistribution looks a distribution up by name.
func NamedDistribution(name string) (LetterDistribution, error) {
	switch strings.ToLower(name) {
	case "", "uniform":
		return UniformDistribution(), nil
	case "english":
		return EnglishLetterDistribution(), nil
	}
	return LetterDistribution{}, fmt.Errorf("unknown letter distribution %q", name)
}

func (ld LetterDistribution) Name() string {
	return ld.name
}

// draw picks a letter with probability proportional to its count. Letters
// are drawn with replacement.
func (ld LetterDistribution) draw(rng *frand.RNG) byte {
	n := rng.Intn(ld.total)
	for i, c := range ld.counts {
		if n < c {
			return byte('A' + i)
		}
		n -= c
	}
	panic("letter distribution total is inconsistent")
}

// RandomFromDistribution makes an n×n board with letters drawn from ld.
func RandomFromDistribution(n int, rng *frand.RNG, ld LetterDistribution) (*Board, error) {
	if n < 0 {
		return nil, fmt.Errorf("board size %d is negative", n)
	}
	if n > MaxDim {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxDim)
	}
	if ld.total == 0 {
		return nil, fmt.Errorf("letter distribution %q is empty", ld.name)
	}
	b := &Board{dim: n, letters: make([]byte, n*n)}
	for i := range b.letters {
		b.letters[i] = ld.draw(rng)
	}
	return b, nil
}
