package renderer

import "time"

// FrameStats contains statistics about one drawn frame
type FrameStats struct {
	Threads     int           // Workers used in each phase
	SuperSample int           // Super-sampling level, 1 when disabled
	Width       int           // Presented width in pixels
	Height      int           // Presented height in pixels
	RenderTime  time.Duration // Ray tracing phase
	SampleTime  time.Duration // Super-sampling phase, zero when disabled
	PresentTime time.Duration // Hand-off to the presenter
	TotalTime   time.Duration // Whole frame including clearing
}

// RenderedPixels returns the number of pixels traced for the frame
func (s FrameStats) RenderedPixels() int {
	level := max(1, s.SuperSample)
	return s.Width * level * s.Height * level
}
