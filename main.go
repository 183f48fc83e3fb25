package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/app"
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/display"
	"github.com/df07/go-sphere-tracer/pkg/output"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

// options holds everything parsed from the command line
type options struct {
	app      app.Config
	headless bool
	output   string
	help     bool
}

// newFlagSet binds every command line flag to opts. The strategy flag is
// returned separately because it needs parsing after the flags are read.
func newFlagSet(opts *options, output io.Writer) (*flag.FlagSet, *string) {
	defaults := app.DefaultConfig()
	opts.app = defaults

	fs := flag.NewFlagSet("spheretracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {}
	fs.IntVar(&opts.app.Width, "width", defaults.Width, "Window width in pixels")
	fs.IntVar(&opts.app.Height, "height", defaults.Height, "Window height in pixels")
	fs.IntVar(&opts.app.Threads, "threads", defaults.Threads, "Number of render threads")
	fs.IntVar(&opts.app.SuperSample, "samples", defaults.SuperSample, "Super-sampling level (1 disables)")
	fs.IntVar(&opts.app.MaxReflections, "reflections", defaults.MaxReflections, "Maximum reflection depth")
	fs.StringVar(&opts.app.Scene, "scene", defaults.Scene, "Scene name: "+strings.Join(scene.Names(), ", "))
	strategy := fs.String("strategy", defaults.Strategy.String(), "Pixel partitioning: 'interleaved' or 'banded'")
	fs.BoolVar(&opts.headless, "headless", false, "Render once to a PNG instead of opening a window")
	fs.StringVar(&opts.output, "output", "output", "Directory for headless renders")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return fs, strategy
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs, strategy := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.help {
		return opts, nil
	}

	parsed, err := renderer.ParseStrategy(*strategy)
	if err != nil {
		return opts, err
	}
	opts.app.Strategy = parsed

	return opts, opts.app.Validate()
}

// createOutputDir returns the directory headless renders of a scene go to
func createOutputDir(root, sceneType string) string {
	return filepath.Join(root, strings.ToLower(strings.TrimSpace(sceneType)))
}

func printHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: spheretracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	var opts options
	fs, _ := newFlagSet(&opts, os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Keys: F1-F5 super-sampling 1x/2x/4x/8x/16x, 1-8 thread count, Esc quits")
	fmt.Println("Headless output is saved to <output>/<scene>/render_<timestamp>.png")
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) || opts.help {
		printHelp()
		return
	}
	if err != nil {
		log.Printf("Invalid options: %v", err)
		os.Exit(2)
	}

	logger := core.NewDefaultLogger()
	if err := run(opts, logger); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(opts options, logger core.Logger) error {
	if opts.headless {
		sink := output.NewPNGSink(createOutputDir(opts.output, opts.app.Scene), logger)
		controller, err := app.NewController(opts.app, sink, logger)
		if err != nil {
			return err
		}
		_, err = controller.Draw()
		return err
	}

	window := display.NewWindow(opts.app.Width, opts.app.Height)
	controller, err := app.NewController(opts.app, window, logger)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Sphere Raytracer (%s)", opts.app.Scene)
	return display.Run(title, window, func() error {
		err := controller.Step()
		if errors.Is(err, app.ErrQuit) {
			return ebiten.Termination
		}
		return err
	})
}
