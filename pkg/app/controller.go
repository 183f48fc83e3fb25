// Package app holds the interactive loop: it owns the render settings,
// reacts to key presses and redraws the scene through a presenter.
package app

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrQuit is returned by Step once the user has asked to quit
var ErrQuit = errors.New("quit requested")

// Config contains the controller's starting settings
type Config struct {
	Width          int    // Presented width in pixels
	Height         int    // Presented height in pixels
	Threads        int    // Parallel workers per phase
	SuperSample    int    // Render at this multiple of the window size
	MaxReflections int    // Reflection depth
	Scene          string // Built-in scene name
	Strategy       renderer.Strategy
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:          960,
		Height:         500,
		Threads:        runtime.NumCPU(),
		SuperSample:    2,
		MaxReflections: geometry.DefaultReflections,
		Scene:          "default",
		Strategy:       renderer.Interleaved,
	}
}

// Validate checks that the settings can be rendered
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Threads < 1 {
		return fmt.Errorf("%w, got %d", renderer.ErrInvalidThreadCount, c.Threads)
	}
	if c.SuperSample < 1 {
		return fmt.Errorf("%w, got %d", renderer.ErrInvalidSampleLevel, c.SuperSample)
	}
	if c.MaxReflections < 0 {
		return fmt.Errorf("reflection depth must not be negative, got %d", c.MaxReflections)
	}
	return nil
}

// sampleRates maps F1..F5 to super-sampling levels
var sampleRates = map[core.Key]int{
	core.KeyF1: 1,
	core.KeyF2: 2,
	core.KeyF3: 4,
	core.KeyF4: 8,
	core.KeyF5: 16,
}

// threadCounts maps the digit keys to worker counts
var threadCounts = map[core.Key]int{
	core.Key1: 1,
	core.Key2: 2,
	core.Key3: 3,
	core.Key4: 4,
	core.Key5: 5,
	core.Key6: 6,
	core.Key7: 7,
	core.Key8: 8,
}

// Controller keeps the current scene and settings and redraws on demand
type Controller struct {
	config    Config
	presenter core.Presenter
	pipeline  *renderer.Pipeline
	scene     *scene.Scene
	logger    core.Logger
	drawn     bool
}

// NewController validates config and builds the scene at the render size
func NewController(config Config, presenter core.Presenter, logger core.Logger) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.DiscardLogger()
	}

	c := &Controller{
		config:    config,
		presenter: presenter,
		logger:    logger,
	}
	c.pipeline = renderer.NewPipeline(presenter, c.rendererConfig(), logger)
	if err := c.rebuildScene(); err != nil {
		return nil, err
	}
	return c, nil
}

// Config returns the current settings
func (c *Controller) Config() Config { return c.config }

// Scene returns the scene currently being drawn
func (c *Controller) Scene() *scene.Scene { return c.scene }

func (c *Controller) rendererConfig() renderer.Config {
	return renderer.Config{
		Threads:        c.config.Threads,
		SuperSample:    c.config.SuperSample,
		MaxReflections: c.config.MaxReflections,
		Strategy:       c.config.Strategy,
	}
}

// rebuildScene sizes the camera at the window size times the sample level
func (c *Controller) rebuildScene() error {
	level := float64(c.config.SuperSample)
	viewport := mgl64.Vec2{float64(c.config.Width) * level, float64(c.config.Height) * level}

	s, err := scene.Lookup(c.config.Scene, viewport)
	if err != nil {
		return err
	}
	c.scene = s
	return nil
}

// Draw renders and presents one frame with the current settings
func (c *Controller) Draw() (renderer.FrameStats, error) {
	c.pipeline.SetConfig(c.rendererConfig())
	stats, err := c.pipeline.DrawFrame(c.scene)
	if err != nil {
		return stats, err
	}
	c.drawn = true
	return stats, nil
}

// ChangeSampleRate switches the super-sampling level and redraws
func (c *Controller) ChangeSampleRate(level int) error {
	if level < 1 {
		return fmt.Errorf("%w, got %d", renderer.ErrInvalidSampleLevel, level)
	}
	c.config.SuperSample = level
	if err := c.rebuildScene(); err != nil {
		return err
	}
	_, err := c.Draw()
	return err
}

// ChangeThreads switches the worker count and redraws
func (c *Controller) ChangeThreads(threads int) error {
	if threads < 1 {
		return fmt.Errorf("%w, got %d", renderer.ErrInvalidThreadCount, threads)
	}
	c.config.Threads = threads
	_, err := c.Draw()
	return err
}

// HandleEvent applies one input event. It reports whether the user asked
// to quit; unbound keys are ignored.
func (c *Controller) HandleEvent(ev core.InputEvent) (bool, error) {
	if ev.Quit || ev.Key == core.KeyEscape {
		return true, nil
	}
	if level, ok := sampleRates[ev.Key]; ok {
		return false, c.ChangeSampleRate(level)
	}
	if threads, ok := threadCounts[ev.Key]; ok {
		return false, c.ChangeThreads(threads)
	}
	return false, nil
}

// Step draws the first frame if needed, then handles pending input. It
// returns ErrQuit once the user has asked to stop.
func (c *Controller) Step() error {
	if !c.drawn {
		if _, err := c.Draw(); err != nil {
			return err
		}
	}

	for _, ev := range c.presenter.PollInput() {
		quit, err := c.HandleEvent(ev)
		if err != nil {
			return err
		}
		if quit {
			return ErrQuit
		}
	}
	return nil
}
