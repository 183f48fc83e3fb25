// Package display shows rendered frames in a desktop window.
package display

import (
	"image/color"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings lists the keys forwarded to the controller
var keyBindings = []struct {
	key  ebiten.Key
	code core.Key
}{
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeyF1, core.KeyF1},
	{ebiten.KeyF2, core.KeyF2},
	{ebiten.KeyF3, core.KeyF3},
	{ebiten.KeyF4, core.KeyF4},
	{ebiten.KeyF5, core.KeyF5},
	{ebiten.KeyDigit1, core.Key1},
	{ebiten.KeyDigit2, core.Key2},
	{ebiten.KeyDigit3, core.Key3},
	{ebiten.KeyDigit4, core.Key4},
	{ebiten.KeyDigit5, core.Key5},
	{ebiten.KeyDigit6, core.Key6},
	{ebiten.KeyDigit7, core.Key7},
	{ebiten.KeyDigit8, core.Key8},
}

// Window is an ebiten game that implements core.Presenter. Frames are
// uploaded to a GPU image; keys are reported when released.
type Window struct {
	width, height int
	background    color.RGBA
	frame         *ebiten.Image
	pending       []core.InputEvent
	step          func() error
}

// NewWindow creates a window of the given logical size
func NewWindow(width, height int) *Window {
	return &Window{width: width, height: height, background: color.RGBA{A: 0xFF}}
}

// Run opens the window and calls step once per tick until the window is
// closed or step returns an error. A step returning ebiten.Termination
// closes the window cleanly. It blocks until the window closes.
func Run(title string, w *Window, step func() error) error {
	w.step = step
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(30)
	return ebiten.RunGame(w)
}

// Clear sets the colour shown behind the frame
func (w *Window) Clear(c core.Color) error {
	w.background = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	return nil
}

// Present uploads a finished frame. The frame data is copied.
func (w *Window) Present(f core.Frame) error {
	if w.frame == nil || w.frame.Bounds().Dx() != f.Width || w.frame.Bounds().Dy() != f.Height {
		if w.frame != nil {
			w.frame.Deallocate()
		}
		w.frame = ebiten.NewImage(f.Width, f.Height)
	}
	w.frame.WritePixels(f.RGBA().Pix)
	return nil
}

// PollInput returns the events gathered since the last call
func (w *Window) PollInput() []core.InputEvent {
	events := w.pending
	w.pending = nil
	return events
}

func (w *Window) poll() {
	if ebiten.IsWindowBeingClosed() {
		w.pending = append(w.pending, core.InputEvent{Quit: true})
	}
	for _, binding := range keyBindings {
		if inpututil.IsKeyJustReleased(binding.key) {
			w.pending = append(w.pending, core.InputEvent{Key: binding.code})
		}
	}
}

func (w *Window) Update() error {
	w.poll()
	if w.step != nil {
		return w.step()
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.background)
	if w.frame == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := w.frame.Bounds().Dx(), w.frame.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/float64(fw), float64(sh)/float64(fh))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(w.frame, op)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
