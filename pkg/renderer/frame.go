package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ClearColor fills the presenter before a new frame arrives
var ClearColor = core.NewColor(0, 64, 0)

// Pipeline draws whole frames: trace, optionally super-sample, present
type Pipeline struct {
	presenter core.Presenter
	config    Config
	logger    core.Logger
}

// NewPipeline creates a frame pipeline. A nil logger discards output.
func NewPipeline(presenter core.Presenter, config Config, logger core.Logger) *Pipeline {
	if logger == nil {
		logger = core.DiscardLogger()
	}
	return &Pipeline{presenter: presenter, config: config, logger: logger}
}

// Config returns the pipeline configuration
func (p *Pipeline) Config() Config { return p.config }

// SetConfig replaces the pipeline configuration for later frames
func (p *Pipeline) SetConfig(config Config) { p.config = config }

// DrawFrame renders scene and hands the result to the presenter. The scene
// should already be sized at SuperSample times the presented resolution.
// Intermediate buffers are released before returning.
func (p *Pipeline) DrawFrame(scene Scene) (FrameStats, error) {
	stats := FrameStats{Threads: p.config.Threads, SuperSample: max(1, p.config.SuperSample)}

	if p.config.Threads < 1 {
		return stats, fmt.Errorf("%w, got %d", ErrInvalidThreadCount, p.config.Threads)
	}
	if p.config.SuperSample < 1 {
		return stats, fmt.Errorf("%w, got %d", ErrInvalidSampleLevel, p.config.SuperSample)
	}

	frameStart := time.Now()
	if err := p.presenter.Clear(ClearColor); err != nil {
		return stats, fmt.Errorf("failed to clear presenter: %w", err)
	}

	p.logger.Printf("Rendering with %d threads at %dx resolution\n", p.config.Threads, stats.SuperSample)

	raytracer := NewRaytracer(scene, p.config)
	renderStart := time.Now()
	fullRes, err := raytracer.render(p.progress("rendered"))
	if err != nil {
		return stats, fmt.Errorf("render failed: %w", err)
	}
	stats.RenderTime = time.Since(renderStart)
	p.logger.Printf("Render completed in %v\n", stats.RenderTime)

	drawBuffer := fullRes
	if stats.SuperSample > 1 {
		p.logger.Printf("Super sampling at %dx.\n", stats.SuperSample)

		sampleStart := time.Now()
		sampled, err := fullRes.superSample(stats.SuperSample, p.config.Threads, p.config.Strategy, p.progress("sampled"))
		fullRes.Release()
		if err != nil {
			return stats, fmt.Errorf("super-sample failed: %w", err)
		}
		stats.SampleTime = time.Since(sampleStart)
		p.logger.Printf("Sampling completed in %v\n", stats.SampleTime)
		drawBuffer = sampled
	}
	defer drawBuffer.Release()

	stats.Width, stats.Height = drawBuffer.Width(), drawBuffer.Height()

	p.logger.Printf("Uploading frame to presenter\n")
	presentStart := time.Now()
	if err := p.presenter.Present(drawBuffer.Frame()); err != nil {
		return stats, fmt.Errorf("failed to present frame: %w", err)
	}
	stats.PresentTime = time.Since(presentStart)
	p.logger.Printf("Uploaded frame in %v\n", stats.PresentTime)

	stats.TotalTime = time.Since(frameStart)
	p.logger.Printf("Took %v to render with %d threads at %dx super-sampling.\n",
		stats.TotalTime, stats.Threads, stats.SuperSample)

	return stats, nil
}

func (p *Pipeline) progress(verb string) func(done, total int) {
	return func(done, total int) {
		p.logger.Printf("%.1f%% %s.\n", 100*float64(done)/float64(total), verb)
	}
}
