package arena

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Scheduler runs at most jobs contests at a time. The first error cancels
// the context given to the remaining contests and is returned by Wait.
type Scheduler struct {
	jobs        int
	ctx         context.Context
	g           *errgroup.Group
	slots       *semaphore.Weighted
	inFlight    atomic.Int64
	maxInFlight atomic.Int64
	submitted   atomic.Int64
}

func NewScheduler(ctx context.Context, jobs int) *Scheduler {
	if jobs < 1 {
		jobs = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	return &Scheduler{
		jobs:  jobs,
		ctx:   ctx,
		g:     g,
		slots: semaphore.NewWeighted(int64(jobs)),
	}
}

// Submit blocks until a slot is free and starts task in its own goroutine.
// It fails only when the scheduler context is done.
func (s *Scheduler) Submit(task func(ctx context.Context) error) error {
	if err := s.slots.Acquire(s.ctx, 1); err != nil {
		return err
	}
	var n = s.inFlight.Add(1)
	for {
		var prev = s.maxInFlight.Load()
		if n <= prev || s.maxInFlight.CompareAndSwap(prev, n) {
			break
		}
	}
	s.submitted.Add(1)
	s.g.Go(func() error {
		defer s.slots.Release(1)
		defer s.inFlight.Add(-1)
		return task(s.ctx)
	})
	return nil
}

// Wait blocks until every submitted contest has finished.
func (s *Scheduler) Wait() error {
	return s.g.Wait()
}

func (s *Scheduler) Jobs() int { return s.jobs }

func (s *Scheduler) InFlight() int { return int(s.inFlight.Load()) }

// MaxInFlight is the highest number of contests that ran at once.
func (s *Scheduler) MaxInFlight() int { return int(s.maxInFlight.Load()) }

func (s *Scheduler) Submitted() int { return int(s.submitted.Load()) }
