//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/render"
	"mad-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const helpText = `R  reset all cells
S  start
P  pause
H  toggle this help
Q  quit
left mouse   paint
right mouse  erase`

// Overlay draws the hover outline and the optional key help on top of the
// grid.
type Overlay struct {
	showHelp  bool
	showHover bool
	hover     color.RGBA
}

// NewOverlay constructs a new overlay instance with the help visible.
func NewOverlay() *Overlay {
	return &Overlay{
		showHelp:  true,
		showHover: true,
		hover:     color.RGBA{R: 250, G: 200, B: 60, A: 255},
	}
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showHover = !o.showHover
	}
}

// Draw renders the outline around cells[hover] when hasHover is set, then
// the help text.
func (o *Overlay) Draw(screen *ebiten.Image, cells []life.Instance, hover int, hasHover bool) {
	if o.showHover && hasHover && hover >= 0 && hover < len(cells) {
		render.Outline(screen, cells[hover], o.hover)
	}
	if o.showHelp {
		ebitenutil.DebugPrintAt(screen, helpText, 8, screen.Bounds().Dy()-8-16*7)
	}
}
