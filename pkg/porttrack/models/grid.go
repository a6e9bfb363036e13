package models

// Grid is the raw 2-D cell matrix of one spreadsheet sheet, addressed by
// zero-based row and column index. Rows may be ragged; Cell returns the
// empty value for out-of-range coordinates.
type Grid struct {
	rows [][]CellValue
	cols int
}

// NewGrid builds a grid from row-major cell values.
func NewGrid(rows [][]CellValue) Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return Grid{rows: rows, cols: cols}
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g.rows)
}

// Cols returns the column count of the grid (the widest row).
func (g Grid) Cols() int {
	return g.cols
}

// Cell returns the value at (row, col), or the empty value when the
// coordinates fall outside the grid.
func (g Grid) Cell(row, col int) CellValue {
	if row < 0 || row >= len(g.rows) {
		return Empty()
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return Empty()
	}
	return r[col]
}
