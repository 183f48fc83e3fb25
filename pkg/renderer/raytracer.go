package renderer

import (
	"runtime"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Config contains rendering configuration
type Config struct {
	Threads        int      // Number of parallel workers, at least 1
	SuperSample    int      // Render scale factor averaged back down; 1 disables
	MaxReflections int      // Reflection depth for reflective spheres
	Strategy       Strategy // How pixels are shared between workers
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Threads:        runtime.NumCPU(),
		SuperSample:    1,
		MaxReflections: geometry.DefaultReflections,
		Strategy:       Interleaved,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetSpheres() []geometry.Sphere
	GetLight() core.PointLight
}

// Raytracer traces a scene into a PixelBuffer
type Raytracer struct {
	scene  Scene
	config Config
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config) *Raytracer {
	return &Raytracer{scene: scene, config: config}
}

// Render traces the scene at full camera resolution using threads workers
func Render(scene Scene, threads int) (*PixelBuffer, error) {
	config := DefaultConfig()
	config.Threads = threads
	return NewRaytracer(scene, config).Render()
}

// Render traces every pixel of the camera viewport. Each worker writes only
// the pixels of its own region into the shared buffer.
func (rt *Raytracer) Render() (*PixelBuffer, error) {
	return rt.render(nil)
}

func (rt *Raytracer) render(progress func(done, total int)) (*PixelBuffer, error) {
	pool, err := NewWorkerPool(rt.config.Threads)
	if err != nil {
		return nil, err
	}

	camera := rt.scene.GetCamera()
	spheres := rt.scene.GetSpheres()
	light := rt.scene.GetLight()
	depth := rt.config.MaxReflections

	buffer := NewPixelBuffer(camera.Width(), camera.Height())
	regions := Partition(buffer.Bounds(), rt.config.Threads, rt.config.Strategy)

	err = pool.Run(regions, func(region Region) error {
		region.Each(func(x, y int) {
			ray := camera.CreateRay(mgl64.Vec2{float64(x), float64(y)})
			buffer.Set(x, y, camera.TraceRay(ray, spheres, light, depth))
		})
		return nil
	}, progress)
	if err != nil {
		return nil, err
	}

	return buffer, nil
}

// SuperSample averages buffer down by the configured level
func (rt *Raytracer) SuperSample(buffer *PixelBuffer) (*PixelBuffer, error) {
	return buffer.superSample(rt.config.SuperSample, rt.config.Threads, rt.config.Strategy, nil)
}
