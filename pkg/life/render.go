package life

import "strings"

// Glyphs used by the textual renderer.
const (
	GlyphDead  = '◻'
	GlyphAlive = '◼'
)

// String renders the board as one newline-terminated row of glyphs per grid
// row, top to bottom, left to right, reflecting the bit state at the time
// of the call.
func (u *Universe) String() string {
	w, h := u.cur.W, u.cur.H
	var b strings.Builder
	b.Grow((w*3 + 1) * h) // both glyphs are 3 bytes in UTF-8
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if u.cur.Get(row, col) {
				b.WriteRune(GlyphAlive)
			} else {
				b.WriteRune(GlyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
