package board

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	b, err := New([]string{"cat", "XxX", "XXX"})
	assert.Nil(t, err)
	assert.Equal(t, 3, b.Dim())
	assert.Equal(t, []string{"CAT", "XXX", "XXX"}, b.Rows())
	assert.Equal(t, byte('A'), b.LetterAt(Cell{0, 1}))
	assert.Equal(t, byte('X'), b.LetterAt(Cell{2, 2}))
}

func TestNewEmpty(t *testing.T) {
	b, err := New(nil)
	assert.Nil(t, err)
	assert.Equal(t, 0, b.Dim())
	assert.False(t, b.Contains(Cell{0, 0}))
}

func TestNewErrors(t *testing.T) {
	type tc struct {
		rows []string
		err  error
	}
	cases := []tc{
		{[]string{"CAT", "XX", "XXX"}, ErrNotSquare},
		{[]string{"CAT", "XXX"}, ErrNotSquare},
		{[]string{"AB"}, ErrNotSquare},
		{[]string{"A1", "BC"}, ErrBadLetter},
		{[]string{"A ", "BC"}, ErrBadLetter},
	}
	for _, c := range cases {
		_, err := New(c.rows)
		assert.True(t, errors.Is(err, c.err), "rows %v: got %v", c.rows, err)
	}
	_, err := New(make([]string, MaxDim+1))
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestFromCells(t *testing.T) {
	b, err := FromCells([][]string{{"C", "A", "T"}, {"X", "X", "X"}, {"X", "X", "X"}})
	assert.Nil(t, err)
	assert.Equal(t, []string{"CAT", "XXX", "XXX"}, b.Rows())

	_, err = FromCells([][]string{{"QU", "A"}, {"B", "C"}})
	assert.True(t, errors.Is(err, ErrBadLetter))
}

func TestString(t *testing.T) {
	b, err := New([]string{"AB", "CD"})
	assert.Nil(t, err)
	assert.Equal(t, "  --\n| AB |\n| CD |\n  --\n", b.String())
}

func TestNeighborCounts(t *testing.T) {
	assert.Len(t, Neighbors(Cell{0, 0}, 1), 0)
	assert.Len(t, Neighbors(Cell{0, 0}, 4), 3)
	assert.Len(t, Neighbors(Cell{0, 2}, 4), 5)
	assert.Len(t, Neighbors(Cell{3, 3}, 4), 3)
	assert.Len(t, Neighbors(Cell{1, 2}, 4), 8)
}

func TestNeighborsOrder(t *testing.T) {
	got := Neighbors(Cell{1, 1}, 3)
	assert.Equal(t, []Cell{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}, got)
	assert.Equal(t, []Cell{{0, 1}, {1, 0}, {1, 1}}, Neighbors(Cell{0, 0}, 2))
}

func TestNeighborsExcludeSelfAndStayInBounds(t *testing.T) {
	n := 5
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := Cell{r, c}
			for _, adj := range Neighbors(cell, n) {
				assert.NotEqual(t, cell, adj)
				assert.True(t, adj.Row >= 0 && adj.Row < n && adj.Col >= 0 && adj.Col < n)
				dr, dc := adj.Row-r, adj.Col-c
				assert.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1)
			}
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	b1, err := Random(6, NewRNG(42))
	assert.Nil(t, err)
	b2, err := Random(6, NewRNG(42))
	assert.Nil(t, err)
	assert.Equal(t, b1.Rows(), b2.Rows())
	for _, row := range b1.Rows() {
		assert.Len(t, row, 6)
		for _, l := range []byte(row) {
			assert.True(t, l >= 'A' && l <= 'Z')
		}
	}
	_, err = Random(MaxDim+1, NewRNG(1))
	assert.True(t, errors.Is(err, ErrTooLarge))
	_, err = Random(-1, NewRNG(1))
	assert.NotNil(t, err)
}

func TestLoadFile(t *testing.T) {
	b, err := LoadFile("testdata/cat.yaml")
	assert.Nil(t, err)
	assert.Equal(t, []string{"CAT", "XXX", "XXX"}, b.Rows())

	_, err = LoadFile("testdata/ragged.yaml")
	assert.True(t, errors.Is(err, ErrNotSquare))

	_, err = LoadFile("testdata/missing.yaml")
	assert.NotNil(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b, err := New([]string{"ABC", "DEF", "GHI"})
	assert.Nil(t, err)
	var buf bytes.Buffer
	assert.Nil(t, b.Save(&buf))
	b2, err := Load(strings.NewReader(buf.String()))
	assert.Nil(t, err)
	assert.Equal(t, b.Rows(), b2.Rows())
}

func TestDistributions(t *testing.T) {
	eng, err := NamedDistribution("English")
	assert.Nil(t, err)
	assert.Equal(t, "english", eng.Name())
	assert.Equal(t, 98, eng.total)

	uni, err := NamedDistribution("")
	assert.Nil(t, err)
	assert.Equal(t, 26, uni.total)

	_, err = NamedDistribution("klingon")
	assert.NotNil(t, err)
}

func TestRandomFromDistribution(t *testing.T) {
	onlyQ := newDistribution("q", map[byte]int{'Q': 3})
	b, err := RandomFromDistribution(3, NewRNG(5), onlyQ)
	assert.Nil(t, err)
	assert.Equal(t, []string{"QQQ", "QQQ", "QQQ"}, b.Rows())

	_, err = RandomFromDistribution(3, NewRNG(5), LetterDistribution{name: "empty"})
	assert.NotNil(t, err)
}
