//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const helpText = "space pause  n step  r reset  s reseed  click toggle  h help  q quit"

// Overlay draws key help and pause state on top of the board.
type Overlay struct {
	showHelp bool
	paused   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{showHelp: true}
}

// SetPaused updates the pause indicator.
func (o *Overlay) SetPaused(paused bool) { o.paused = paused }

// Update toggles overlay visibility from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHelp {
		return
	}
	text := helpText
	if o.paused {
		text = "[paused] " + text
	}
	ebitenutil.DebugPrint(screen, text)
}
