package core

import "math"

// Grid stores a 2D field of boolean cells in row-major order. Coordinates are
// (x, y) = (column, row) with the origin at the top-left corner.
type Grid struct {
	Cols, Rows int
	cells      []bool
}

// NewGrid allocates an all-dead grid. Non-positive dimensions yield an empty
// grid with both dimensions set to zero.
func NewGrid(cols, rows int) Grid {
	if cols <= 0 || rows <= 0 {
		return Grid{}
	}
	return Grid{Cols: cols, Rows: rows, cells: make([]bool, cols*rows)}
}

// Empty reports whether the grid has no cells.
func (g Grid) Empty() bool { return g.Cols == 0 || g.Rows == 0 }

// Cells exposes the backing slice so callers can read/write values directly.
func (g Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.Cols + x }

// At reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g Grid) At(x, y int) bool {
	if g.Empty() {
		return false
	}
	x, y = g.Wrap(x, y)
	return g.cells[g.Index(x, y)]
}

// Set updates the cell at (x, y). Coordinates wrap.
func (g Grid) Set(x, y int, alive bool) {
	if g.Empty() {
		return
	}
	x, y = g.Wrap(x, y)
	g.cells[g.Index(x, y)] = alive
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	x = (x%g.Cols + g.Cols) % g.Cols
	y = (y%g.Rows + g.Rows) % g.Rows
	return x, y
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := Grid{Cols: g.Cols, Rows: g.Rows}
	if g.cells != nil {
		out.cells = append([]bool(nil), g.cells...)
	}
	return out
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.Cols != o.Cols || g.Rows != o.Rows {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Dimensions converts a viewport in pixels into grid columns and rows, rounding
// partial cells up so the grid always covers the viewport.
func Dimensions(width, height, cellSize float64) (cols, rows int) {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return 0, 0
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return 0, 0
	}
	return int(math.Ceil(width / cellSize)), int(math.Ceil(height / cellSize))
}
