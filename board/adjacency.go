package board

// Neighbors returns every cell within one king move of c on an n×n board,
// excluding c itself. Cells come back in row-major order, so the result for
// a given cell is always the same.
func Neighbors(c Cell, n int) []Cell {
	adj := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		row := c.Row + dr
		if row < 0 || row >= n {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			col := c.Col + dc
			if (dr == 0 && dc == 0) || col < 0 || col >= n {
				continue
			}
			adj = append(adj, Cell{row, col})
		}
	}
	return adj
}
