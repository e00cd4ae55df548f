// Package life implements Conway's Game of Life on a toroidal grid with
// packed one-bit-per-cell storage.
package life

// Default dimensions used by New.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// Universe holds one generation of a toroidal Game of Life board and
// advances it under the classic B3/S23 rule. Updates are double buffered:
// every tick evaluates all cells against the previous generation before the
// buffers swap, so no cell sees a half-updated neighborhood.
type Universe struct {
	cur *BitGrid
	nxt *BitGrid
}

// New returns a 64x64 universe seeded with the default pattern.
func New() *Universe {
	return NewSeeded(DefaultWidth, DefaultHeight, DefaultPattern)
}

// NewEmpty returns an all-dead universe with the provided dimensions.
func NewEmpty(w, h int) *Universe {
	return &Universe{cur: NewBitGrid(w, h), nxt: NewBitGrid(w, h)}
}

// NewSeeded returns a universe with the provided dimensions whose initial
// generation is assigned by the seeder.
func NewSeeded(w, h int, seed Seeder) *Universe {
	u := NewEmpty(w, h)
	u.Seed(seed)
	return u
}

// Width returns the column count.
func (u *Universe) Width() int { return u.cur.W }

// Height returns the row count.
func (u *Universe) Height() int { return u.cur.H }

// Alive reports whether the cell at (row, col) is alive.
func (u *Universe) Alive(row, col int) bool { return u.cur.Get(row, col) }

// Population returns the number of live cells in the current generation.
func (u *Universe) Population() int { return u.cur.Count() }

// Words exposes the current generation as packed 64-bit words: bit i of
// word i/64 is the state of the cell at linear index row*width+col. The
// slice aliases live storage and is valid only until the next mutating call
// (Tick, Toggle, SetAlive, Seed, Reset, SetWidth, SetHeight); callers must
// not retain it across such calls.
func (u *Universe) Words() []uint64 { return u.cur.Words() }

// Seed assigns every cell's state from the seeder over the linear index.
func (u *Universe) Seed(seed Seeder) {
	if seed == nil {
		seed = DefaultPattern
	}
	w, h := u.cur.W, u.cur.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			u.cur.Set(row, col, seed(row*w+col))
		}
	}
}

// Reset randomizes the board using the provided seed.
func (u *Universe) Reset(seed int64) {
	u.Seed(RandomPattern(seed))
}

// Toggle flips exactly one cell between alive and dead.
func (u *Universe) Toggle(row, col int) {
	u.cur.Flip(row, col)
}

// SetAlive marks each referenced (row, col) cell alive and leaves every
// other cell untouched.
func (u *Universe) SetAlive(cells [][2]int) {
	for _, c := range cells {
		u.cur.Set(c[0], c[1], true)
	}
}

// SetWidth replaces the column count and resets every cell to dead.
func (u *Universe) SetWidth(w int) {
	u.resize(w, u.cur.H)
}

// SetHeight replaces the row count and resets every cell to dead.
func (u *Universe) SetHeight(h int) {
	u.resize(u.cur.W, h)
}

func (u *Universe) resize(w, h int) {
	u.cur = NewBitGrid(w, h)
	u.nxt = NewBitGrid(w, h)
}

// Tick advances the universe by one generation. Next states are written to
// the back buffer from live-neighbor counts taken against the pre-tick
// state only, then the buffers swap.
func (u *Universe) Tick() {
	w, h := u.cur.W, u.cur.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			alive := u.cur.Get(row, col)
			n := u.liveNeighborCount(row, col)

			next := alive
			switch {
			case alive && n < 2:
				next = false // underpopulation
			case alive && n > 3:
				next = false // overpopulation
			case !alive && n == 3:
				next = true // reproduction
			}
			u.nxt.Set(row, col, next)
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
}

// liveNeighborCount sums the live cells among the 8 toroidal neighbors of
// (row, col). On 1-wide or 1-tall boards the wrapped offsets can land on
// the cell itself or revisit a neighbor; the modulo arithmetic is the
// contract, so those hits count.
func (u *Universe) liveNeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := u.cur.Wrap(row+dr, col+dc)
			if u.cur.Get(r, c) {
				count++
			}
		}
	}
	return count
}
