package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// PixelBuffer is a width x height grid of colours stored in one contiguous
// slice. Reads outside the grid return black and writes are dropped.
type PixelBuffer struct {
	width  int
	height int
	pixels []core.Color
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	width, height = max(0, width), max(0, height)
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the buffer width in pixels
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels
func (b *PixelBuffer) Height() int { return b.height }

// Bounds returns the buffer's pixel rectangle
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *PixelBuffer) inBounds(x, y int) bool {
	return b.pixels != nil && x >= 0 && y >= 0 && x < b.width && y < b.height
}

// At returns the colour at (x, y), or black when out of range
func (b *PixelBuffer) At(x, y int) core.Color {
	if !b.inBounds(x, y) {
		return core.Black
	}
	return b.pixels[y*b.width+x]
}

// Set stores a colour at (x, y); out of range writes are ignored
func (b *PixelBuffer) Set(x, y int, c core.Color) {
	if b.inBounds(x, y) {
		b.pixels[y*b.width+x] = c
	}
}

// Release drops the pixel storage. The buffer reads as black afterwards.
func (b *PixelBuffer) Release() {
	b.pixels = nil
}

// Released reports whether Release has been called
func (b *PixelBuffer) Released() bool {
	return b.pixels == nil
}

// GetAverage returns the quadratic mean of the level x level block whose
// top-left corner is (x, y). Each channel is the square root of the mean of
// the squared values, which keeps bright pixels from being dulled the way a
// plain mean would. The block is clipped to the buffer.
func (b *PixelBuffer) GetAverage(x, y, level int) core.Color {
	maxX := min(x+level, b.width)
	maxY := min(y+level, b.height)
	x, y = max(x, 0), max(y, 0)
	if maxX <= x || maxY <= y || b.pixels == nil {
		return core.Black
	}

	var r, g, bl uint64
	for py := y; py < maxY; py++ {
		row := b.pixels[py*b.width : (py+1)*b.width]
		for px := x; px < maxX; px++ {
			p := row[px]
			r += uint64(p.R) * uint64(p.R)
			g += uint64(p.G) * uint64(p.G)
			bl += uint64(p.B) * uint64(p.B)
		}
	}

	covered := float64((maxX - x) * (maxY - y))
	return core.Color{
		R: rootMean(r, covered),
		G: rootMean(g, covered),
		B: rootMean(bl, covered),
	}
}

func rootMean(sumSquares uint64, count float64) uint8 {
	v := math.Sqrt(float64(sumSquares) / count)
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// SuperSample returns a new buffer of (width/level, height/level) whose
// pixels are the quadratic mean of each level x level block. Output pixels
// are shared between threads workers. Remainder rows and columns are dropped.
func (b *PixelBuffer) SuperSample(level, threads int) (*PixelBuffer, error) {
	return b.superSample(level, threads, Interleaved, nil)
}

func (b *PixelBuffer) superSample(level, threads int, strategy Strategy, progress func(done, total int)) (*PixelBuffer, error) {
	if level < 1 {
		return nil, ErrInvalidSampleLevel
	}

	pool, err := NewWorkerPool(threads)
	if err != nil {
		return nil, err
	}

	sampled := NewPixelBuffer(b.width/level, b.height/level)
	regions := Partition(sampled.Bounds(), threads, strategy)

	err = pool.Run(regions, func(region Region) error {
		region.Each(func(x, y int) {
			sampled.Set(x, y, b.GetAverage(x*level, y*level, level))
		})
		return nil
	}, progress)
	if err != nil {
		return nil, err
	}

	return sampled, nil
}

// RGB returns row-major 8-bit RGB triples
func (b *PixelBuffer) RGB() []byte {
	out := make([]byte, 0, len(b.pixels)*3)
	for _, p := range b.pixels {
		out = append(out, p.R, p.G, p.B)
	}
	return out
}

// Frame returns a read-only view for a presenter
func (b *PixelBuffer) Frame() core.Frame {
	return core.Frame{Width: b.width, Height: b.height, RGB: b.RGB()}
}

// RGBA converts the buffer to an opaque image
func (b *PixelBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
