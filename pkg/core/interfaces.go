package core

import "image"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Frame is a read-only view of a finished image: row-major 8-bit RGB triples
type Frame struct {
	Width  int
	Height int
	RGB    []byte
}

// Key identifies an input key understood by the controller
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
)

// InputEvent is a key release or a request to close the window
type InputEvent struct {
	Key  Key
	Quit bool
}

// Presenter displays finished frames and reports user input. The rendering
// core never talks to a window directly; it hands frames to a Presenter.
type Presenter interface {
	Clear(c Color) error
	Present(f Frame) error
	PollInput() []InputEvent
}

// RGBA converts the frame to an opaque image
func (f Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, j := 0, 0; i+2 < len(f.RGB) && j+3 < len(img.Pix); i, j = i+3, j+4 {
		img.Pix[j+0] = f.RGB[i+0]
		img.Pix[j+1] = f.RGB[i+1]
		img.Pix[j+2] = f.RGB[i+2]
		img.Pix[j+3] = 0xFF
	}
	return img
}
