package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Scene is an immutable collection of spheres, one light and one camera
type Scene struct {
	spheres []geometry.Sphere
	light   core.PointLight
	camera  *geometry.Camera
}

// BuildFromLookAt creates a scene viewed from eye towards target
func BuildFromLookAt(viewport mgl64.Vec2, eye, target mgl64.Vec3, spheres []geometry.Sphere, light core.PointLight) *Scene {
	return &Scene{
		spheres: append([]geometry.Sphere(nil), spheres...),
		light:   light,
		camera:  geometry.FromLookAt(viewport, eye, target),
	}
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *geometry.Camera { return s.camera }

// GetLight returns the scene's light
func (s *Scene) GetLight() core.PointLight { return s.light }

// GetSpheres returns a copy of the spheres in scan order
func (s *Scene) GetSpheres() []geometry.Sphere {
	return append([]geometry.Sphere(nil), s.spheres...)
}

// Width returns the camera viewport width in pixels
func (s *Scene) Width() int { return s.camera.Width() }

// Height returns the camera viewport height in pixels
func (s *Scene) Height() int { return s.camera.Height() }

// Builder assembles a Scene step by step
type Builder struct {
	viewport mgl64.Vec2
	eye      mgl64.Vec3
	target   mgl64.Vec3
	light    core.PointLight
	spheres  []geometry.Sphere
}

// NewBuilder starts a scene with a white light at the origin and the camera
// at (0,0,-50) looking at the origin
func NewBuilder(viewport mgl64.Vec2) *Builder {
	return &Builder{
		viewport: viewport,
		eye:      mgl64.Vec3{0, 0, -50},
		light:    core.NewPointLight(mgl64.Vec3{0, 0, 0}, 1),
	}
}

// LookAt places the camera
func (b *Builder) LookAt(eye, target mgl64.Vec3) *Builder {
	b.eye, b.target = eye, target
	return b
}

// Light sets the scene's single light
func (b *Builder) Light(light core.PointLight) *Builder {
	b.light = light
	return b
}

// AddSphere appends a sphere
func (b *Builder) AddSphere(centre mgl64.Vec3, radius float64, props geometry.ShapeProperties) *Builder {
	b.spheres = append(b.spheres, geometry.NewSphere(centre, radius, props))
	return b
}

// Build returns the finished scene. The builder can keep being used.
func (b *Builder) Build() *Scene {
	return BuildFromLookAt(b.viewport, b.eye, b.target, b.spheres, b.light)
}
