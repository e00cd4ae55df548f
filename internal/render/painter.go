//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from packed cell words.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.ensure(w, h)
	return gp
}

// Blit decodes the packed words for a w*h grid into the painter image and
// draws it scaled onto dst. The painter reallocates its buffers when the
// grid dimensions change.
func (gp *GridPainter) Blit(dst *ebiten.Image, words []uint64, w, h int, on, off color.Color, scale int) {
	if w <= 0 || h <= 0 || len(words)*64 < w*h {
		return
	}
	gp.ensure(w, h)
	fillBitsRGBA(gp.buf, words, w*h, on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}
