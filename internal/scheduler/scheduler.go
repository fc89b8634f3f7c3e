// Package scheduler enqueues recurring jobs on the worker pool.
package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	clk        clock.Clock
	workerPool Enqueuer

	mu      sync.Mutex
	timers  []clock.Timer
	stopped bool
}

// New creates a new scheduler
func New(clk clock.Clock, pool Enqueuer) *Scheduler {
	return &Scheduler{
		clk:        clk,
		workerPool: pool,
	}
}

// Schedule registers a job to run at a fixed interval. A run is skipped when the
// worker queue is full rather than blocking the clock. Non-positive intervals are ignored.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	s.timers = append(s.timers, s.clk.Every(interval, func() {
		s.workerPool.TryEnqueue(job)
	}))
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
