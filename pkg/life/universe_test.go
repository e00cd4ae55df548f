package life

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// spinner returns a 5x5 board with a vertical blinker in column 1, rows 1-3.
func spinner() *Universe {
	u := NewEmpty(5, 5)
	u.SetAlive([][2]int{{1, 1}, {2, 1}, {3, 1}})
	return u
}

func TestIndexRowMajor(t *testing.T) {
	g := NewBitGrid(5, 5)
	require.Equal(t, 6, g.Index(1, 1))
	require.Equal(t, 11, g.Index(2, 1))
	require.Equal(t, 16, g.Index(3, 1))

	// Bijection onto [0, w*h).
	seen := make(map[int]bool)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			idx := g.Index(row, col)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 25)
			require.False(t, seen[idx], "index %d assigned twice", idx)
			seen[idx] = true
		}
	}
}

func TestLiveNeighborCount(t *testing.T) {
	u := spinner()

	cases := []struct {
		row, col int
		want     int
	}{
		{0, 0, 1},
		{0, 1, 1},
		{1, 0, 2},
		{2, 1, 2},
		{2, 0, 3},
		{2, 2, 3},
		{3, 3, 0},
		{4, 1, 1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, u.liveNeighborCount(c.row, c.col),
			"live neighbor count at (%d,%d)", c.row, c.col)
	}
}

func TestNeighborCountTranslationInvariance(t *testing.T) {
	base := [][2]int{{1, 1}, {2, 1}, {3, 1}}
	ref := spinner()

	// Shifting the same relative pattern anywhere on the torus must leave
	// every correspondingly shifted neighbor count unchanged.
	for dr := 0; dr < 5; dr++ {
		for dc := 0; dc < 5; dc++ {
			u := NewEmpty(5, 5)
			shifted := make([][2]int, len(base))
			for i, c := range base {
				shifted[i] = [2]int{(c[0] + dr) % 5, (c[1] + dc) % 5}
			}
			u.SetAlive(shifted)

			for row := 0; row < 5; row++ {
				for col := 0; col < 5; col++ {
					want := ref.liveNeighborCount(row, col)
					got := u.liveNeighborCount((row+dr)%5, (col+dc)%5)
					require.Equal(t, want, got,
						"count at (%d,%d) changed under translation (%d,%d)", row, col, dr, dc)
				}
			}
		}
	}
}

func TestTickSpinner(t *testing.T) {
	u := spinner()
	require.True(t, u.Alive(1, 1))
	require.True(t, u.Alive(2, 1))
	require.True(t, u.Alive(3, 1))
	require.False(t, u.Alive(2, 0))
	require.False(t, u.Alive(2, 2))

	u.Tick()

	require.False(t, u.Alive(1, 1))
	require.True(t, u.Alive(2, 1))
	require.False(t, u.Alive(3, 1))
	require.True(t, u.Alive(2, 0))
	require.True(t, u.Alive(2, 2))
	require.False(t, u.Alive(4, 2))
}

func TestBlinkerOscillation(t *testing.T) {
	u := spinner()

	u.Tick()
	u.Tick()

	expects := map[[2]int]bool{
		{1, 1}: true,
		{2, 1}: true,
		{3, 1}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := u.Alive(row, col)
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("after two ticks cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestRuleUnderpopulation(t *testing.T) {
	u := NewEmpty(5, 5)
	u.SetAlive([][2]int{{2, 2}, {2, 3}})

	u.Tick()

	require.Zero(t, u.Population(), "cells with fewer than two neighbors must die")
}

func TestRuleStableBlock(t *testing.T) {
	u := NewEmpty(5, 5)
	block := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	u.SetAlive(block)

	u.Tick()

	require.Equal(t, 4, u.Population())
	for _, c := range block {
		require.True(t, u.Alive(c[0], c[1]), "block cell (%d,%d) must survive", c[0], c[1])
	}
}

func TestRuleOverpopulation(t *testing.T) {
	u := NewEmpty(5, 5)
	u.SetAlive([][2]int{{1, 2}, {2, 1}, {2, 2}, {2, 3}, {3, 2}})

	require.Equal(t, 4, u.liveNeighborCount(2, 2))
	u.Tick()
	require.False(t, u.Alive(2, 2), "cell with four neighbors must die")
}

func TestTickDeterministic(t *testing.T) {
	a := NewSeeded(16, 16, RandomPattern(99))
	b := NewSeeded(16, 16, RandomPattern(99))
	require.Equal(t, a.Words(), b.Words(), "identical seeds must produce identical boards")

	a.Tick()
	b.Tick()
	require.Equal(t, a.Words(), b.Words(), "tick must be a pure function of the pre-tick state")
}

func TestDegenerateSingleCell(t *testing.T) {
	u := NewEmpty(1, 1)
	u.SetAlive([][2]int{{0, 0}})

	// Every wrapped offset lands on the cell itself.
	require.Equal(t, 8, u.liveNeighborCount(0, 0))

	u.Tick()
	require.False(t, u.Alive(0, 0))

	u.Tick()
	require.False(t, u.Alive(0, 0))
}

func TestDegenerateSingleRow(t *testing.T) {
	u := NewEmpty(3, 1)
	u.SetAlive([][2]int{{0, 0}, {0, 1}, {0, 2}})

	// With one row each horizontal neighbor is reached three times and the
	// cell itself twice via vertical wraparound.
	for col := 0; col < 3; col++ {
		require.Equal(t, 8, u.liveNeighborCount(0, col))
	}

	u.Tick()
	require.Zero(t, u.Population())
}

func TestDegenerateSingleColumn(t *testing.T) {
	u := NewEmpty(1, 3)
	u.SetAlive([][2]int{{0, 0}, {1, 0}, {2, 0}})

	for row := 0; row < 3; row++ {
		require.Equal(t, 8, u.liveNeighborCount(row, 0))
	}

	u.Tick()
	require.Zero(t, u.Population())
}

func TestToggleInvolution(t *testing.T) {
	u := spinner()
	before := append([]uint64(nil), u.Words()...)

	u.Toggle(0, 4)
	require.True(t, u.Alive(0, 4))
	require.Equal(t, 4, u.Population())

	u.Toggle(0, 4)
	require.Equal(t, before, u.Words(), "double toggle must restore the board")
}

func TestSetAliveLeavesOthersUntouched(t *testing.T) {
	u := NewEmpty(4, 4)
	u.SetAlive([][2]int{{0, 0}, {3, 3}})

	require.Equal(t, 2, u.Population())
	require.True(t, u.Alive(0, 0))
	require.True(t, u.Alive(3, 3))
	require.False(t, u.Alive(1, 1))

	// Marking an already-live cell is a no-op.
	u.SetAlive([][2]int{{0, 0}})
	require.Equal(t, 2, u.Population())
}

func TestResizeResetsBoard(t *testing.T) {
	u := NewSeeded(8, 8, DefaultPattern)
	require.NotZero(t, u.Population())

	u.SetWidth(10)
	require.Equal(t, 10, u.Width())
	require.Equal(t, 8, u.Height())
	require.Zero(t, u.Population(), "resize must reset every cell to dead")

	u.SetAlive([][2]int{{0, 0}})
	u.SetWidth(10)
	require.Zero(t, u.Population(), "repeated identical resize still yields an all-dead board")

	u.SetHeight(3)
	require.Equal(t, 3, u.Height())
	require.Zero(t, u.Population())
}

func TestOutOfRangeRejected(t *testing.T) {
	u := NewEmpty(4, 4)

	require.Panics(t, func() { u.Toggle(-1, 0) })
	require.Panics(t, func() { u.Toggle(0, 4) })
	require.Panics(t, func() { u.SetAlive([][2]int{{4, 0}}) })
	require.Panics(t, func() { u.Alive(0, -1) })
}

func TestWordsPacking(t *testing.T) {
	u := NewEmpty(8, 8)
	require.Len(t, u.Words(), 1)

	u.SetAlive([][2]int{{0, 0}, {7, 7}}) // linear indices 0 and 63
	words := u.Words()
	require.Equal(t, uint64(1), words[0]&1)
	require.Equal(t, uint64(1), (words[0]>>63)&1)

	u = NewEmpty(8, 9)
	require.Len(t, u.Words(), 2)
	u.SetAlive([][2]int{{8, 0}}) // linear index 64
	require.Equal(t, uint64(1), u.Words()[1]&1)
}

func TestDefaultSeedPattern(t *testing.T) {
	u := New()
	require.Equal(t, DefaultWidth, u.Width())
	require.Equal(t, DefaultHeight, u.Height())

	// Alive iff i%2 == 0 or i%7 == 0 over the linear index.
	require.True(t, u.Alive(0, 0))  // i = 0
	require.False(t, u.Alive(0, 1)) // i = 1
	require.True(t, u.Alive(0, 2))  // i = 2
	require.True(t, u.Alive(0, 7))  // i = 7
	require.False(t, u.Alive(0, 9)) // i = 9
}
