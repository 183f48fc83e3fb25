package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeProperties describes how a surface looks
type ShapeProperties struct {
	Color          core.Color
	Reflectiveness float64 // expected in [0,1], not clamped
}

// NewShapeProperties creates surface properties
func NewShapeProperties(color core.Color, reflectiveness float64) ShapeProperties {
	return ShapeProperties{Color: color, Reflectiveness: reflectiveness}
}

// MatteBlack is a non-reflective black surface
func MatteBlack() ShapeProperties { return NewShapeProperties(core.Black, 0) }

// MatteGrey is a non-reflective grey surface, used as the default
func MatteGrey() ShapeProperties { return NewShapeProperties(core.Grey, 0) }

// Shiny is a fully reflective white surface
func Shiny() ShapeProperties { return NewShapeProperties(core.White, 1) }

// SphereIntersection is the outcome of a ray/sphere test.
// Distance and the points are only meaningful when Hit is true.
type SphereIntersection struct {
	Hit      bool
	Distance float64
	First    mgl64.Vec3
	Second   mgl64.Vec3
}

// Sphere represents a sphere shape
type Sphere struct {
	Centre     mgl64.Vec3
	Radius     float64
	Properties ShapeProperties
}

// NewSphere creates a new sphere
func NewSphere(centre mgl64.Vec3, radius float64, properties ShapeProperties) Sphere {
	return Sphere{
		Centre:     centre,
		Radius:     radius,
		Properties: properties,
	}
}

// RayIntersects tests the ray against the sphere using the closest point of
// the ray's line to the centre. Rays starting inside the sphere never hit,
// and neither does a sphere with no radius.
func (s Sphere) RayIntersects(ray core.Ray) SphereIntersection {
	if s.Radius <= 0 {
		return SphereIntersection{}
	}

	radiusSq := s.Radius * s.Radius
	toCentre := s.Centre.Sub(ray.Origin)

	if toCentre.LenSqr() < radiusSq {
		return SphereIntersection{}
	}

	// Sphere lies behind the ray
	t := toCentre.Dot(ray.Direction)
	if t <= 0 {
		return SphereIntersection{}
	}

	closest := ray.ClosestPoint(s.Centre)
	distSq := s.Centre.Sub(closest).LenSqr()

	switch {
	case distSq == radiusSq:
		// Tangent: one intersection
		return SphereIntersection{
			Hit:      true,
			Distance: closest.Sub(ray.Origin).Len(),
			First:    closest,
			Second:   closest,
		}
	case distSq < radiusSq:
		offset := math.Sqrt(radiusSq - distSq)
		first := ray.At(t - offset)
		return SphereIntersection{
			Hit:      true,
			Distance: first.Sub(ray.Origin).Len(),
			First:    first,
			Second:   ray.At(t + offset),
		}
	default:
		return SphereIntersection{}
	}
}

// Normal returns the unit surface normal at a point on the sphere
func (s Sphere) Normal(point mgl64.Vec3) mgl64.Vec3 {
	return point.Sub(s.Centre).Normalize()
}

// Shade returns the Lambertian diffuse colour at a point on the sphere.
// Points facing away from the light are black.
func (s Sphere) Shade(point, normal mgl64.Vec3, light core.PointLight) core.Color {
	directionToLight := light.Position.Sub(point).Normalize()

	facing := normal.Dot(directionToLight)
	if facing <= 0 {
		return core.Black
	}

	return s.Properties.Color.Mul(light.Color).Scale(facing).Scale(light.Intensity)
}
