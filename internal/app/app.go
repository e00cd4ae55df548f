//go:build ebiten

package app

import (
	"image/color"
	"time"

	"life-ca/internal/render"
	"life-ca/internal/ui"
	"life-ca/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Universe to the ebiten.Game interface.
type Game struct {
	uni     *life.Universe
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided universe.
func New(uni *life.Universe, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		uni:      uni,
		painter:  render.NewGridPainter(uni.Width(), uni.Height()),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reseeds the universe with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.uni.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the universe.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleAtCursor()
	}

	if g.overlay != nil {
		g.overlay.SetPaused(g.paused)
		g.overlay.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.uni.Tick()
		g.tickOnce = false
	}
	return nil
}

// toggleAtCursor maps the cursor position to board coordinates and flips
// that cell. Clicks outside the board are ignored.
func (g *Game) toggleAtCursor() {
	x, y := ebiten.CursorPosition()
	col := x / g.scale
	row := y / g.scale
	if row < 0 || row >= g.uni.Height() || col < 0 || col >= g.uni.Width() {
		return
	}
	g.uni.Toggle(row, col)
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.uni.Words(), g.uni.Width(), g.uni.Height(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.uni.Width() * g.scale, g.uni.Height() * g.scale
}
