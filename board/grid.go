package board

import (
	"errors"
	"fmt"
	"strings"
)

// MaxDim is the largest board dimension we accept.
const MaxDim = 1024

var (
	ErrNotSquare = errors.New("board is not square")
	ErrBadLetter = errors.New("board cell is not a letter")
	ErrTooLarge  = errors.New("board is too large")
)

// A Cell is a 0-indexed (row, column) coordinate on a board.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is an immutable N×N grid of upper-case ASCII letters.
type Board struct {
	dim     int
	letters []byte
}

// New builds a board out of rows of letters. There must be exactly as many
// rows as there are letters in each row. Letters are folded to upper case.
func New(rows []string) (*Board, error) {
	dim := len(rows)
	if dim > MaxDim {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, dim, MaxDim)
	}
	b := &Board{dim: dim, letters: make([]byte, 0, dim*dim)}
	for r, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrNotSquare, r, len(row), dim)
		}
		for c := 0; c < dim; c++ {
			l := row[c]
			if l >= 'a' && l <= 'z' {
				l = l - 'a' + 'A'
			}
			if l < 'A' || l > 'Z' {
				return nil, fmt.Errorf("%w: %q at %v", ErrBadLetter, row[c], Cell{r, c})
			}
			b.letters = append(b.letters, l)
		}
	}
	return b, nil
}

// FromCells builds a board where every cell is given as its own string, as
// in [["C","A","T"],...].
func FromCells(cells [][]string) (*Board, error) {
	rows := make([]string, len(cells))
	for r, row := range cells {
		var sb strings.Builder
		for c, cell := range row {
			if len(cell) != 1 {
				return nil, fmt.Errorf("%w: %q at %v", ErrBadLetter, cell, Cell{r, c})
			}
			sb.WriteString(cell)
		}
		rows[r] = sb.String()
	}
	return New(rows)
}

// Dim returns N for an N×N board.
func (b *Board) Dim() int {
	return b.dim
}

// Contains returns true if c lies on the board.
func (b *Board) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.dim && c.Col >= 0 && c.Col < b.dim
}

// LetterAt returns the letter in cell c. c must be on the board.
func (b *Board) LetterAt(c Cell) byte {
	return b.letters[c.Row*b.dim+c.Col]
}

// Rows returns the board as one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, b.dim)
	for r := 0; r < b.dim; r++ {
		rows[r] = string(b.letters[r*b.dim : (r+1)*b.dim])
	}
	return rows
}

// Neighbors returns the cells adjacent to c on this board.
func (b *Board) Neighbors(c Cell) []Cell {
	return Neighbors(c, b.dim)
}

// String draws the board inside a frame:
//
//	  ---
//	| CAT |
//	| XXX |
//	  ---
func (b *Board) String() string {
	var sb strings.Builder
	sep := "  " + strings.Repeat("-", b.dim) + "\n"
	sb.WriteString(sep)
	for _, row := range b.Rows() {
		sb.WriteString("| ")
		sb.WriteString(row)
		sb.WriteString(" |\n")
	}
	sb.WriteString(sep)
	return sb.String()
}
