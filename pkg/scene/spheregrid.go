package scene

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := mgl64.DegToRad(h)

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.ColorFromScalar(mgl64.Vec3{r, g, blue})
}

const gridSize = 6

// NewSphereGridScene creates a gridSize x gridSize wall of spheres. Hue
// changes along each row and reflectiveness grows down each column.
func NewSphereGridScene(viewport mgl64.Vec2) *Scene {
	const spacing = 5.0
	const radius = 2.0

	b := NewBuilder(viewport).
		LookAt(mgl64.Vec3{0, 0, -60}, mgl64.Vec3{0, 0, 0}).
		Light(core.NewPointLight(mgl64.Vec3{-25, 25, -40}, 1.8))

	offset := spacing * (gridSize - 1) / 2
	for row := 0; row < gridSize; row++ {
		reflectiveness := float64(row) / float64(gridSize)
		for col := 0; col < gridSize; col++ {
			hue := 360.0 * float64(col) / gridSize
			centre := mgl64.Vec3{float64(col)*spacing - offset, offset - float64(row)*spacing, 0}
			b.AddSphere(centre, radius, geometry.NewShapeProperties(oklchToRGB(0.7, 0.15, hue), reflectiveness))
		}
	}

	return b.Build()
}
