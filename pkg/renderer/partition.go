package renderer

import (
	"fmt"
	"image"
	"strings"
)

// Strategy decides how pixels are shared out between workers
type Strategy int

const (
	// Interleaved gives worker i every column i, i+n, i+2n, ...
	Interleaved Strategy = iota
	// Banded gives each worker a contiguous band of height/n rows; the last
	// band also takes the remainder
	Banded
)

func (s Strategy) String() string {
	switch s {
	case Interleaved:
		return "interleaved"
	case Banded:
		return "banded"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "interleaved" or "banded"
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "interleaved", "":
		return Interleaved, nil
	case "banded":
		return Banded, nil
	default:
		return 0, fmt.Errorf("unknown partition strategy %q", name)
	}
}

// Region is the set of pixels owned by one worker. Regions produced by one
// Partition call never overlap, so workers can write to a shared buffer
// without locking.
type Region struct {
	Worker   int
	Workers  int
	Bounds   image.Rectangle // whole image for Interleaved, the band for Banded
	Strategy Strategy
}

// Partition splits bounds into workers disjoint regions that together cover
// every pixel exactly once. workers must be at least 1.
func Partition(bounds image.Rectangle, workers int, strategy Strategy) []Region {
	if workers < 1 {
		return nil
	}

	regions := make([]Region, workers)
	bandHeight := bounds.Dy() / workers
	for i := range regions {
		region := Region{Worker: i, Workers: workers, Bounds: bounds, Strategy: strategy}
		if strategy == Banded {
			y0 := bounds.Min.Y + i*bandHeight
			y1 := y0 + bandHeight
			if i == workers-1 {
				y1 = bounds.Max.Y
			}
			region.Bounds = image.Rect(bounds.Min.X, y0, bounds.Max.X, y1)
		}
		regions[i] = region
	}
	return regions
}

// Each calls visit for every pixel in the region, column by column
func (r Region) Each(visit func(x, y int)) {
	step, start := 1, r.Bounds.Min.X
	if r.Strategy == Interleaved {
		step, start = r.Workers, r.Bounds.Min.X+r.Worker
	}

	for x := start; x < r.Bounds.Max.X; x += step {
		for y := r.Bounds.Min.Y; y < r.Bounds.Max.Y; y++ {
			visit(x, y)
		}
	}
}

// Len returns the number of pixels in the region
func (r Region) Len() int {
	n := 0
	r.Each(func(int, int) { n++ })
	return n
}
