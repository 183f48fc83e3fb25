package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSphere_RayIntersects_Miss(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{0, 0, 0}, 1.0, MatteGrey())

	tests := []struct {
		name      string
		origin    mgl64.Vec3
		direction mgl64.Vec3
	}{
		{"pointing away", mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 0, -1}},
		{"perpendicular", mgl64.Vec3{0, 0, -10}, mgl64.Vec3{1, 0, 0}},
		{"passes beside", mgl64.Vec3{2, 0, -10}, mgl64.Vec3{0, 0, 1}},
		{"origin inside", mgl64.Vec3{0, 0, 0.5}, mgl64.Vec3{0, 0, 1}},
		{"origin at centre", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := sphere.RayIntersects(core.NewRay(tt.origin, tt.direction))
			if hit.Hit {
				t.Errorf("Expected miss, got hit at distance %f", hit.Distance)
			}
		})
	}
}

func TestSphere_RayIntersects_BehindNeverHits(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{3, -2, 5}, 2.0, MatteGrey())
	origins := []mgl64.Vec3{{10, 0, 0}, {0, 10, 0}, {-4, -4, 20}, {3, -2, -5}}
	directions := []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}

	for _, origin := range origins {
		for _, dir := range directions {
			if sphere.Centre.Sub(origin).Dot(dir) > 0 {
				continue
			}
			if hit := sphere.RayIntersects(core.NewRay(origin, dir)); hit.Hit {
				t.Errorf("Ray from %v along %v points away but hit at %f", origin, dir, hit.Distance)
			}
		}
	}
}

func TestSphere_RayIntersects_ThroughCentre(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{0, 0, 0}, 2.0, MatteGrey())
	ray := core.NewRay(mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 0, 1})

	hit := sphere.RayIntersects(ray)
	if !hit.Hit {
		t.Fatal("Expected hit, but got miss")
	}

	tc := sphere.Centre.Sub(ray.Origin).Dot(ray.Direction)
	tolerance := 1e-9
	if math.Abs(hit.Distance-(tc-sphere.Radius)) > tolerance {
		t.Errorf("Expected first distance %f, got %f", tc-sphere.Radius, hit.Distance)
	}
	second := hit.Second.Sub(ray.Origin).Len()
	if math.Abs(second-(tc+sphere.Radius)) > tolerance {
		t.Errorf("Expected second distance %f, got %f", tc+sphere.Radius, second)
	}
	if !hit.First.ApproxEqualThreshold(mgl64.Vec3{0, 0, -2}, tolerance) {
		t.Errorf("Expected first point (0,0,-2), got %v", hit.First)
	}
	if !hit.Second.ApproxEqualThreshold(mgl64.Vec3{0, 0, 2}, tolerance) {
		t.Errorf("Expected second point (0,0,2), got %v", hit.Second)
	}
}

func TestSphere_RayIntersects_Tangent(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{0, 0, 0}, 1.0, MatteGrey())
	ray := core.NewRay(mgl64.Vec3{1, 0, -10}, mgl64.Vec3{0, 0, 1})

	hit := sphere.RayIntersects(ray)
	if !hit.Hit {
		t.Fatal("Expected glancing hit, but got miss")
	}
	if hit.First != hit.Second {
		t.Errorf("Tangent hit should have equal points, got %v and %v", hit.First, hit.Second)
	}
	if !hit.First.ApproxEqual(mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Expected hit point (1,0,0), got %v", hit.First)
	}
	if math.Abs(hit.Distance-10) > 1e-9 {
		t.Errorf("Expected distance 10, got %f", hit.Distance)
	}
}

func TestSphere_RayIntersects_ZeroRadius(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{0, 0, 0}, 0, MatteGrey())
	ray := core.NewRay(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1})

	if hit := sphere.RayIntersects(ray); hit.Hit {
		t.Errorf("Zero radius sphere should never be hit, got distance %f", hit.Distance)
	}
}

func TestSphere_Normal(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{1, 1, 1}, 2.0, MatteGrey())

	normal := sphere.Normal(mgl64.Vec3{1, 3, 1})
	if !normal.ApproxEqual(mgl64.Vec3{0, 1, 0}) {
		t.Errorf("Expected normal (0,1,0), got %v", normal)
	}
}

func TestSphere_Shade(t *testing.T) {
	point := mgl64.Vec3{0, 0, -1}
	normal := mgl64.Vec3{0, 0, -1}

	tests := []struct {
		name     string
		props    ShapeProperties
		light    core.PointLight
		expected core.Color
	}{
		{
			name:     "facing white light",
			props:    NewShapeProperties(core.White, 0),
			light:    core.NewPointLight(mgl64.Vec3{0, 0, -10}, 1),
			expected: core.White,
		},
		{
			name:     "light behind surface",
			props:    NewShapeProperties(core.White, 0),
			light:    core.NewPointLight(mgl64.Vec3{0, 0, 10}, 1),
			expected: core.Black,
		},
		{
			name:     "light grazing surface",
			props:    NewShapeProperties(core.White, 0),
			light:    core.NewPointLight(mgl64.Vec3{10, 0, -1}, 1),
			expected: core.Black,
		},
		{
			name:     "red surface filters light",
			props:    NewShapeProperties(core.Red, 0),
			light:    core.NewPointLight(mgl64.Vec3{0, 0, -10}, 1),
			expected: core.Red,
		},
		{
			name:     "half intensity",
			props:    NewShapeProperties(core.White, 0),
			light:    core.NewPointLight(mgl64.Vec3{0, 0, -10}, 0.5),
			expected: core.Color{R: 128, G: 128, B: 128},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(mgl64.Vec3{0, 0, 0}, 1, tt.props)
			got := sphere.Shade(point, normal, tt.light)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
