//go:build ebiten

package app

import (
	"fmt"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the slider panel in pixels.
const HUDWidth = 220

// Game adapts a Loop to the ebiten.Game interface. Update is the frame
// signal; Draw renders the frame produced by the latest Update.
type Game struct {
	loop    *Loop
	painter *render.CellPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	frame    Frame
	lastX    int
	lastY    int
	viewW    int
	viewH    int
	hasFrame bool
}

// New constructs a Game for the provided loop.
func New(loop *Loop) *Game {
	return &Game{
		loop:    loop,
		painter: render.NewCellPainter(render.DefaultPalette),
		hud:     ui.NewHUD(loop, HUDWidth),
		overlay: ui.NewOverlay(),
		lastX:   -1,
		lastY:   -1,
	}
}

// WindowSize returns a window size that fits the grid and the HUD.
func WindowSize(loop *Loop) (int, int) {
	w, h := loop.Control().Layout().Extent(loop.Life().Size())
	return int(w) + HUDWidth, int(h)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.hud.Update(g.viewW - g.hud.Width())

	mx, my := ebiten.CursorPosition()
	overPanel := g.hud.Contains(mx, my)
	if mx != g.lastX || my != g.lastY {
		g.lastX, g.lastY = mx, my
		g.loop.Handle(PointerMoved{X: float64(mx), Y: float64(my)}, overPanel)
	}
	g.buttons(overPanel)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Handle(KeyPressed{Key: KeyReset}, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.loop.Handle(KeyPressed{Key: KeyStart}, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.loop.Handle(KeyPressed{Key: KeyPause}, false)
	}
	g.overlay.Update()

	g.frame = g.loop.Frame(time.Now())
	g.hasFrame = true
	g.hud.SetStatus(statusLines(g.frame)...)
	return nil
}

// buttons forwards mouse button edges. Presses over the HUD belong to it;
// releases always reach the grid so a drag that ends on the panel does not
// leave a button stuck down.
func (g *Game) buttons(overPanel bool) {
	for _, b := range []struct {
		mouse  ebiten.MouseButton
		button Button
	}{
		{ebiten.MouseButtonLeft, ButtonLeft},
		{ebiten.MouseButtonRight, ButtonRight},
	} {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			g.loop.Handle(ButtonPressed{Button: b.button}, overPanel)
		}
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			g.loop.Handle(ButtonReleased{Button: b.button}, false)
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.hasFrame {
		return
	}
	screen.Fill(render.ClearRGBA(g.frame.ClearColor))
	g.painter.Draw(screen, g.frame.Cells)
	g.overlay.Draw(screen, g.frame.Cells, g.frame.Hover, g.frame.HasHover)
	g.hud.Draw(screen)
}

// Layout follows the window size so the HUD stays on the right edge.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		g.loop.Handle(Resized{Width: outsideWidth, Height: outsideHeight}, false)
	}
	return outsideWidth, outsideHeight
}

func statusLines(f Frame) []string {
	state := "Paused"
	if f.State == core.Running {
		state = "Running"
	}
	return []string{
		state,
		fmt.Sprintf("Generation %d", f.Generation),
		fmt.Sprintf("Population %d", f.Population),
		fmt.Sprintf("Step %s", f.StepTime.Round(time.Microsecond)),
	}
}
