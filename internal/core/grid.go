package core

// BoolGrid stores the live/dead state of a square grid as a flat slice in
// row-major order. Linear index i maps to (x = i % side, y = i / side).
type BoolGrid struct {
	Side  int
	cells []bool
}

// NewBoolGrid allocates an all-dead grid with the given side length.
func NewBoolGrid(side int) *BoolGrid {
	if side <= 0 {
		side = 1
	}
	return &BoolGrid{Side: side, cells: make([]bool, side*side)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *BoolGrid) Index(x, y int) int { return y*g.Side + x }

// Get reports whether the cell at the given linear index is alive.
func (g *BoolGrid) Get(i int) bool { return g.cells[i] }

// Set forces the cell at the given linear index to the provided state.
func (g *BoolGrid) Set(i int, alive bool) { g.cells[i] = alive }

// Reset kills every cell.
func (g *BoolGrid) Reset() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Randomize sets each cell independently alive with probability 0.5.
func (g *BoolGrid) Randomize(rng *RNG) {
	FillBool(rng, g.cells)
}
