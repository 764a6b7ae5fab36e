package landvalue

// Grid owns the current and previous generation buffers. Coordinates are
// not bounds-checked: callers clamp before calling At or Set.
type Grid struct {
	rows, cols int
	cur        []Cell
	prev       []Cell
}

// NewGrid allocates a rows×cols grid of zero cells.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	total := rows * cols
	return &Grid{rows: rows, cols: cols, cur: make([]Cell, total), prev: make([]Cell, total)}
}

// Rows reports the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols reports the column count.
func (g *Grid) Cols() int { return g.cols }

// At reads the current generation.
func (g *Grid) At(row, col int) Cell { return g.cur[row*g.cols+col] }

// Set overwrites a cell of the current generation.
func (g *Grid) Set(row, col int, c Cell) { g.cur[row*g.cols+col] = c }

// Prev reads the snapshot taken at the start of the running pass.
func (g *Grid) Prev(row, col int) Cell { return g.prev[row*g.cols+col] }

// Snapshot copies the current generation into the previous buffer.
func (g *Grid) Snapshot() { copy(g.prev, g.cur) }

// Fill sets every current cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cur {
		g.cur[i] = c
	}
}

// Cells exposes the current generation in row-major order.
func (g *Grid) Cells() []Cell { return g.cur }
