// Package term renders a simulation in a terminal with tcell. Each cell is
// two columns wide and one row tall; row 0 holds the status line.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/render"

	"github.com/gdamore/tcell/v2"
)

const gridTop = 1

// Frontend connects a tcell screen to a Loop.
type Frontend struct {
	screen  tcell.Screen
	loop    *app.Loop
	palette render.Palette
	buttons tcell.ButtonMask
}

// New returns a frontend drawing onto screen, which must already be
// initialised.
func New(screen tcell.Screen, loop *app.Loop) *Frontend {
	return &Frontend{screen: screen, loop: loop, palette: render.DefaultPalette}
}

// Run processes events and draws at fps frames per second until the user
// quits or ctx is done. Events are read on a helper goroutine and handed over
// a channel; all simulation work stays on the calling goroutine.
func (f *Frontend) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go f.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	f.Draw(f.loop.Frame(time.Now()))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			f.Draw(f.loop.Frame(now))
		}
	}
}

// HandleEvent translates one tcell event. It reports true when the user
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return f.key(e)
	case *tcell.EventMouse:
		f.mouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		f.loop.Handle(app.Resized{Width: w, Height: h}, false)
		f.screen.Sync()
	}
	return false
}

func (f *Frontend) key(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch e.Rune() {
	case 'q', 'Q':
		return true
	case 'r', 'R':
		f.loop.Handle(app.KeyPressed{Key: app.KeyReset}, false)
	case 's', 'S':
		f.loop.Handle(app.KeyPressed{Key: app.KeyStart}, false)
	case 'p', 'P':
		f.loop.Handle(app.KeyPressed{Key: app.KeyPause}, false)
	}
	return false
}

// mouse converts a terminal position into the pointer space of the loop's
// layout and emits button edges. Presses on the status line are consumed.
func (f *Frontend) mouse(e *tcell.EventMouse) {
	col, row := e.Position()
	px, py := f.pointer(col, row)
	f.loop.Handle(app.PointerMoved{X: px, Y: py}, false)

	onStatus := row < gridTop
	now := e.Buttons()
	for _, b := range []struct {
		mask   tcell.ButtonMask
		button app.Button
	}{
		{tcell.Button1, app.ButtonLeft},
		{tcell.Button2, app.ButtonRight},
	} {
		was := f.buttons&b.mask != 0
		is := now&b.mask != 0
		switch {
		case is && !was:
			f.loop.Handle(app.ButtonPressed{Button: b.button}, onStatus)
		case was && !is:
			f.loop.Handle(app.ButtonReleased{Button: b.button}, false)
		}
	}
	f.buttons = now
}

// pointer returns the centre of the cell under (col, row) in layout space,
// or a point off the grid when there is none.
func (f *Frontend) pointer(col, row int) (float64, float64) {
	x, y := col/2, row-gridTop
	size := f.loop.Life().Size()
	if col < 0 || y < 0 || x >= size.W || y >= size.H {
		return -1, -1
	}
	return f.loop.Control().Layout().Center(x, y)
}

// Draw renders a frame and shows it.
func (f *Frontend) Draw(fr app.Frame) {
	bg := tcellColor(render.ClearRGBA(fr.ClearColor))
	base := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	f.screen.Fill(' ', base)

	status := fmt.Sprintf(" %s  gen %d  pop %d  [s]tart [p]ause [r]eset [q]uit", fr.State, fr.Generation, fr.Population)
	for i, r := range status {
		f.screen.SetContent(i, 0, r, nil, base)
	}

	for i, in := range fr.Cells {
		style := base.Background(tcellColor(f.palette.For(in.Alive)))
		if fr.HasHover && fr.Hover == i {
			style = style.Reverse(true)
		}
		f.screen.SetContent(2*in.X, in.Y+gridTop, ' ', nil, style)
		f.screen.SetContent(2*in.X+1, in.Y+gridTop, ' ', nil, style)
	}
	f.screen.Show()
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
