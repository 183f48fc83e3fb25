// Package output writes presented frames to disk.
package output

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// PNGSink is a headless presenter that saves every frame as a PNG
type PNGSink struct {
	dir    string
	now    func() time.Time
	logger core.Logger
	files  []string
}

// NewPNGSink writes into dir, creating it on first use
func NewPNGSink(dir string, logger core.Logger) *PNGSink {
	if logger == nil {
		logger = core.DiscardLogger()
	}
	return &PNGSink{dir: dir, now: time.Now, logger: logger}
}

// Clear does nothing; every saved frame is fully opaque
func (s *PNGSink) Clear(core.Color) error { return nil }

// Present encodes the frame to dir/render_<timestamp>.png
func (s *PNGSink) Present(f core.Frame) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := s.now().Format("20060102_150405")
	filename := filepath.Join(s.dir, fmt.Sprintf("render_%s.png", timestamp))
	for i := 1; fileExists(filename); i++ {
		filename = filepath.Join(s.dir, fmt.Sprintf("render_%s_%d.png", timestamp, i))
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := png.Encode(file, f.RGBA()); err != nil {
		file.Close()
		return fmt.Errorf("error saving PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}

	s.files = append(s.files, filename)
	s.logger.Printf("Render saved as %s\n", filename)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// PollInput reports nothing; a file has no keyboard
func (s *PNGSink) PollInput() []core.InputEvent { return nil }

// Files returns the paths written so far
func (s *PNGSink) Files() []string {
	return append([]string(nil), s.files...)
}
