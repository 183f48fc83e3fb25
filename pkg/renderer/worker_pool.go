package renderer

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidThreadCount is returned for a thread count below 1
	ErrInvalidThreadCount = errors.New("thread count must be at least 1")
	// ErrInvalidSampleLevel is returned for a super-sample level below 1
	ErrInvalidSampleLevel = errors.New("super-sample level must be at least 1")
)

// WorkerPool runs one task per region in parallel and waits for all of them
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool for the given number of workers
func NewWorkerPool(numWorkers int) (*WorkerPool, error) {
	if numWorkers < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidThreadCount, numWorkers)
	}
	return &WorkerPool{numWorkers: numWorkers}, nil
}

// Run starts task once per region, each on its own goroutine, and blocks
// until every task has returned. progress, if not nil, is called after each
// task finishes with the number finished so far; calls are serialised.
func (wp *WorkerPool) Run(regions []Region, task func(Region) error, progress func(done, total int)) error {
	if len(regions) > wp.numWorkers {
		return fmt.Errorf("%d regions for %d workers", len(regions), wp.numWorkers)
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		done int
	)

	for _, region := range regions {
		region := region
		g.Go(func() error {
			if err := task(region); err != nil {
				return fmt.Errorf("worker %d: %w", region.Worker, err)
			}
			if progress != nil {
				mu.Lock()
				done++
				progress(done, len(regions))
				mu.Unlock()
			}
			return nil
		})
	}

	return g.Wait()
}
