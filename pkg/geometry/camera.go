package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultReflections is the reflection depth used by TracePixel
	DefaultReflections = 5

	fieldOfView = 45.0 // vertical, degrees
	nearPlane   = 0.1
	farPlane    = 1000.0
)

// Camera turns pixel coordinates into world-space rays and traces them
type Camera struct {
	viewport          mgl64.Vec2
	projection        mgl64.Mat4
	inverseProjection mgl64.Mat4
	view              mgl64.Mat4
	inverseView       mgl64.Mat4
}

// FromLookAt creates a camera at eye looking at target, with a 45 degree
// vertical field of view and the world's Y axis as up
func FromLookAt(viewport mgl64.Vec2, eye, target mgl64.Vec3) *Camera {
	projection := mgl64.Perspective(mgl64.DegToRad(fieldOfView), viewport.X()/viewport.Y(), nearPlane, farPlane)
	view := mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0})

	return &Camera{
		viewport:          viewport,
		projection:        projection,
		inverseProjection: projection.Inv(),
		view:              view,
		inverseView:       view.Inv(),
	}
}

// Width returns the viewport width in pixels
func (c *Camera) Width() int { return int(c.viewport.X()) }

// Height returns the viewport height in pixels
func (c *Camera) Height() int { return int(c.viewport.Y()) }

// CreateRay returns the world-space ray through the given pixel
func (c *Camera) CreateRay(pixel mgl64.Vec2) core.Ray {
	deviceX := (pixel.X()/c.viewport.X())*2 - 1
	deviceY := (pixel.Y()/c.viewport.Y())*2 - 1

	// Pixel rows grow downwards and columns mirror the look-at basis
	start := c.unproject(mgl64.Vec4{-deviceX, -deviceY, -1, 1})
	end := c.unproject(mgl64.Vec4{-deviceX, -deviceY, 1, 1})

	return core.NewRay(start, end.Sub(start).Normalize())
}

// unproject maps a clip-space point to world space
func (c *Camera) unproject(clip mgl64.Vec4) mgl64.Vec3 {
	eye := c.inverseProjection.Mul4x1(clip)
	eye = eye.Mul(1 / eye.W())
	return c.inverseView.Mul4x1(eye).Vec3()
}

// TracePixel traces the ray through a pixel with the default reflection depth
func (c *Camera) TracePixel(pixel mgl64.Vec2, spheres []Sphere, light core.PointLight) core.Color {
	return c.TraceRay(c.CreateRay(pixel), spheres, light, DefaultReflections)
}

// TraceRay returns the colour seen along a ray. Reflective surfaces recurse
// with one fewer remaining reflection; at zero the plain shade is used.
func (c *Camera) TraceRay(ray core.Ray, spheres []Sphere, light core.PointLight, remainingReflections int) core.Color {
	hit, sphere, ok := closestHit(ray, spheres)
	if !ok {
		return core.Background
	}

	normal := sphere.Normal(hit.First)

	shadowRay := core.NewRay(hit.First, light.Position.Sub(hit.First).Normalize())
	if inShadow(shadowRay, spheres, sphere) {
		return core.Black
	}

	reflectiveness := sphere.Properties.Reflectiveness
	if reflectiveness > 0 && remainingReflections > 0 {
		// 2*dot(-d, n)*n + d
		direction := normal.Mul(2 * ray.Direction.Mul(-1).Dot(normal)).Add(ray.Direction)
		reflectionRay := core.NewRay(hit.First, direction)

		local := sphere.Shade(hit.First, normal, light).Scale(1 - reflectiveness)
		reflected := c.TraceRay(reflectionRay, spheres, light, remainingReflections-1).Scale(reflectiveness)
		return reflected.Add(local)
	}

	return sphere.Shade(hit.First, normal, light)
}

// closestHit scans every sphere and keeps the nearest hit. Equal distances
// keep the earlier sphere.
func closestHit(ray core.Ray, spheres []Sphere) (SphereIntersection, Sphere, bool) {
	var (
		nearest SphereIntersection
		sphere  Sphere
	)
	for _, s := range spheres {
		hit := s.RayIntersects(ray)
		if hit.Hit && (!nearest.Hit || hit.Distance < nearest.Distance) {
			nearest = hit
			sphere = s
		}
	}
	return nearest, sphere, nearest.Hit
}

// inShadow reports whether any sphere other than the one hit blocks the
// shadow ray. Spheres are told apart by centre.
func inShadow(shadowRay core.Ray, spheres []Sphere, hitSphere Sphere) bool {
	for _, s := range spheres {
		if s.Centre != hitSphere.Centre && s.RayIntersects(shadowRay).Hit {
			return true
		}
	}
	return false
}
