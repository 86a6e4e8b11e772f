package core

import (
	"context"
	"time"
)

// TickStats records how long each step took on the wall clock.
type TickStats struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
	Last  time.Duration
}

func (s TickStats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

func (s *TickStats) record(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Count++
	s.Total += d
	s.Last = d
}

// Runner drives a step function at a fixed rate. The step always receives the
// same delta regardless of how late the ticker fires.
type Runner struct {
	Interval time.Duration
	Stats    TickStats
}

func NewRunner(tickRate int) *Runner {
	return &Runner{Interval: time.Second / time.Duration(tickRate)}
}

// Once runs a single step and records its duration.
func (r *Runner) Once(step func()) {
	start := time.Now()
	step()
	r.Stats.record(time.Since(start))
}

// Run steps until ctx is cancelled.
func (r *Runner) Run(ctx context.Context, step func()) {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			r.Once(step)
		}
	}
}
