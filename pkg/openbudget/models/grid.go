// Package models defines data structures for budget table reconstruction.
package models

// Grid is a rectangular table region as produced by the upstream extractor.
// An empty string is the "no value" sentinel; every row has the same length.
type Grid [][]string

// NewGrid builds a rectangular Grid from rows of possibly uneven length,
// padding short rows with empty cells. The input rows are copied.
func NewGrid(rows [][]string) Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]string, width)
		copy(g[i], row)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Cell returns the value at (r, c), or "" when out of range.
func (g Grid) Cell(r, c int) string {
	if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
		return ""
	}
	return g[r][c]
}

// RowEquals reports whether row r matches want exactly, including its width.
func (g Grid) RowEquals(r int, want []string) bool {
	if r < 0 || r >= len(g) || len(g[r]) != len(want) {
		return false
	}
	for i, v := range want {
		if g[r][i] != v {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Append concatenates other below g. Column count mismatches are
// outer-joined on position: the narrower side is padded with empty cells.
// Neither input is modified.
func (g Grid) Append(other Grid) Grid {
	width := g.Cols()
	if other.Cols() > width {
		width = other.Cols()
	}

	out := make(Grid, 0, len(g)+len(other))
	for _, src := range [2]Grid{g, other} {
		for _, row := range src {
			padded := make([]string, width)
			copy(padded, row)
			out = append(out, padded)
		}
	}
	return out
}
