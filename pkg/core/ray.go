package core

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates a new ray. The direction is stored as given.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ClosestPoint returns the point on the ray's line nearest to p
func (r Ray) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return r.At(p.Sub(r.Origin).Dot(r.Direction))
}
