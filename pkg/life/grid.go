package life

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitGrid stores a 2D grid of single-bit cell values in row-major order.
// Bit i of word i/64 (counting from the least significant bit) holds the
// state of the cell at linear index i, so renderers can decode the packed
// words directly.
type BitGrid struct {
	W, H int
	bits *bitset.BitSet
}

// NewBitGrid allocates an all-dead grid with the given dimensions.
// Negative dimensions are clamped to zero.
func NewBitGrid(w, h int) *BitGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &BitGrid{W: w, H: h, bits: bitset.New(uint(w * h))}
}

// Index returns the linear index for coordinates (row, col).
func (g *BitGrid) Index(row, col int) int { return row*g.W + col }

// Wrap applies toroidal wrapping to the provided coordinates. Both
// dimensions must be non-zero; an empty grid has no cells to wrap onto.
func (g *BitGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Get reports whether the cell at (row, col) is alive.
func (g *BitGrid) Get(row, col int) bool {
	g.check(row, col)
	return g.bits.Test(uint(g.Index(row, col)))
}

// Set writes the cell at (row, col).
func (g *BitGrid) Set(row, col int, alive bool) {
	g.check(row, col)
	g.bits.SetTo(uint(g.Index(row, col)), alive)
}

// Flip inverts the cell at (row, col).
func (g *BitGrid) Flip(row, col int) {
	g.check(row, col)
	g.bits.Flip(uint(g.Index(row, col)))
}

// Clear marks every cell dead.
func (g *BitGrid) Clear() {
	g.bits.ClearAll()
}

// Count returns the number of live cells.
func (g *BitGrid) Count() int {
	return int(g.bits.Count())
}

// Words exposes the packed backing words so callers can read the state
// without per-cell calls. The slice aliases the grid's storage and is valid
// only until the next mutating call.
func (g *BitGrid) Words() []uint64 {
	return g.bits.Bytes()
}

// check rejects out-of-range coordinates before they reach the bitset,
// which would otherwise grow silently on writes past the end.
func (g *BitGrid) check(row, col int) {
	if row < 0 || row >= g.H || col < 0 || col >= g.W {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d grid", row, col, g.W, g.H))
	}
}
