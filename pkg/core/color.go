package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color is a 24-bit RGB colour. Arithmetic happens in [0,1] space and is
// converted back to 8-bit channels on every operation.
type Color struct {
	R, G, B uint8
}

// Named colours
var (
	Black      = Color{0, 0, 0}
	White      = Color{255, 255, 255}
	Grey       = Color{127, 127, 127}
	Red        = Color{255, 0, 0}
	Green      = Color{0, 255, 0}
	Blue       = Color{0, 0, 255}
	Background = Color{0, 0, 64}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ToScalar returns the colour as a vector with each channel in [0,1]
func (c Color) ToScalar() mgl64.Vec3 {
	return mgl64.Vec3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// ColorFromScalar converts a [0,1] vector back to 8-bit channels using
// ceil(v*255), clamped to [0,255]
func ColorFromScalar(v mgl64.Vec3) Color {
	return Color{R: channel(v[0]), G: channel(v[1]), B: channel(v[2])}
}

func channel(v float64) uint8 {
	scaled := math.Ceil(v * 255)
	if scaled >= 255 {
		return 255
	}
	if scaled <= 0 || math.IsNaN(scaled) {
		return 0
	}
	return uint8(scaled)
}

// Mul blends two colours by component-wise multiplication
func (c Color) Mul(other Color) Color {
	a, b := c.ToScalar(), other.ToScalar()
	return ColorFromScalar(mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]})
}

// Scale multiplies every channel by a scalar
func (c Color) Scale(s float64) Color {
	return ColorFromScalar(c.ToScalar().Mul(s))
}

// Add blends two colours by addition
func (c Color) Add(other Color) Color {
	return ColorFromScalar(c.ToScalar().Add(other.ToScalar()))
}

// IsBlack reports whether every channel is zero
func (c Color) IsBlack() bool {
	return c == Black
}
