package scene

import (
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

func TestBuildFromLookAt(t *testing.T) {
	spheres := []geometry.Sphere{
		geometry.NewSphere(mgl64.Vec3{0, 0, 0}, 6, geometry.MatteGrey()),
	}
	light := core.NewPointLight(mgl64.Vec3{-20, 0, -20}, 2)

	s := BuildFromLookAt(mgl64.Vec2{320, 240}, mgl64.Vec3{0, 0, -50}, mgl64.Vec3{0, 0, 0}, spheres, light)

	if s.Width() != 320 || s.Height() != 240 {
		t.Errorf("Expected 320x240, got %dx%d", s.Width(), s.Height())
	}
	if s.GetLight() != light {
		t.Errorf("Expected light %v, got %v", light, s.GetLight())
	}

	// Changing the caller's slice must not change the scene
	spheres[0].Radius = 1
	if got := s.GetSpheres()[0].Radius; got != 6 {
		t.Errorf("Scene should own its spheres, radius changed to %f", got)
	}

}

func TestScene_GetSpheresReturnsCopy(t *testing.T) {
	s := NewSingleSphereScene(mgl64.Vec2{64, 48})

	s.GetSpheres()[0].Radius = 100
	s.GetSpheres()[0].Properties = geometry.Shiny()

	sphere := s.GetSpheres()[0]
	if sphere.Radius != 6 {
		t.Errorf("Scene radius changed through GetSpheres, got %f", sphere.Radius)
	}
	if sphere.Properties != geometry.MatteGrey() {
		t.Errorf("Scene properties changed through GetSpheres, got %+v", sphere.Properties)
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(mgl64.Vec2{100, 100}).
		LookAt(mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 0, 0}).
		AddSphere(mgl64.Vec3{0, 0, 0}, 1, geometry.Shiny())

	first := b.Build()
	b.AddSphere(mgl64.Vec3{3, 0, 0}, 1, geometry.MatteBlack())
	second := b.Build()

	if len(first.GetSpheres()) != 1 {
		t.Errorf("Earlier build should keep 1 sphere, got %d", len(first.GetSpheres()))
	}
	if len(second.GetSpheres()) != 2 {
		t.Errorf("Expected 2 spheres, got %d", len(second.GetSpheres()))
	}
	if first.GetLight().Color != core.White {
		t.Errorf("Default light should be white, got %v", first.GetLight().Color)
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene(mgl64.Vec2{192, 100})

	spheres := s.GetSpheres()
	if len(spheres) != 6 {
		t.Fatalf("Expected 6 spheres, got %d", len(spheres))
	}
	if spheres[0].Properties.Color != core.Red || spheres[0].Properties.Reflectiveness != 0.5 {
		t.Errorf("Expected half-reflective red centre sphere, got %+v", spheres[0].Properties)
	}
	light := s.GetLight()
	if light.Intensity != 2.0 || light.Color != core.NewColor(94, 85, 64) {
		t.Errorf("Unexpected light %+v", light)
	}
}

func TestSphereGridScene(t *testing.T) {
	s := NewSphereGridScene(mgl64.Vec2{160, 90})

	spheres := s.GetSpheres()
	if len(spheres) != gridSize*gridSize {
		t.Fatalf("Expected %d spheres, got %d", gridSize*gridSize, len(spheres))
	}
	for i, sphere := range spheres {
		r := sphere.Properties.Reflectiveness
		if r < 0 || r > 1 {
			t.Errorf("Sphere %d reflectiveness %f out of range", i, r)
		}
	}
	if spheres[0].Properties.Reflectiveness != 0 {
		t.Errorf("First row should be matte, got %f", spheres[0].Properties.Reflectiveness)
	}
}
