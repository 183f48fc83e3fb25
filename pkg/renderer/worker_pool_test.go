package renderer

import (
	"errors"
	"image"
	"sync/atomic"
	"testing"
)

func TestNewWorkerPool_RejectsZero(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewWorkerPool(n); !errors.Is(err, ErrInvalidThreadCount) {
			t.Errorf("Expected ErrInvalidThreadCount for %d workers, got %v", n, err)
		}
	}
}

func TestWorkerPool_RunWaitsForAll(t *testing.T) {
	pool, err := NewWorkerPool(4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var ran atomic.Int32
	var progressCalls []int
	regions := Partition(image.Rect(0, 0, 8, 8), 4, Banded)

	err = pool.Run(regions, func(Region) error {
		ran.Add(1)
		return nil
	}, func(done, total int) {
		if total != 4 {
			t.Errorf("Expected total 4, got %d", total)
		}
		progressCalls = append(progressCalls, done)
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if ran.Load() != 4 {
		t.Errorf("Expected 4 tasks to run, got %d", ran.Load())
	}
	if len(progressCalls) != 4 || progressCalls[3] != 4 {
		t.Errorf("Expected progress 1..4, got %v", progressCalls)
	}
}

func TestWorkerPool_RunReturnsTaskError(t *testing.T) {
	pool, _ := NewWorkerPool(3)
	boom := errors.New("boom")

	err := pool.Run(Partition(image.Rect(0, 0, 3, 3), 3, Interleaved), func(r Region) error {
		if r.Worker == 1 {
			return boom
		}
		return nil
	}, nil)

	if !errors.Is(err, boom) {
		t.Errorf("Expected task error, got %v", err)
	}
}

func TestWorkerPool_RunRejectsTooManyRegions(t *testing.T) {
	pool, _ := NewWorkerPool(2)

	err := pool.Run(Partition(image.Rect(0, 0, 3, 3), 3, Interleaved), func(Region) error { return nil }, nil)
	if err == nil {
		t.Error("Expected error when regions outnumber workers")
	}
}
