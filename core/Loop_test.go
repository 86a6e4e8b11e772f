package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickStats(t *testing.T) {
	var s TickStats
	assert.Equal(t, time.Duration(0), s.Avg())

	s.record(3 * time.Millisecond)
	s.record(1 * time.Millisecond)
	s.record(5 * time.Millisecond)

	assert.Equal(t, int64(3), s.Count)
	assert.Equal(t, 1*time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg())
	assert.Equal(t, 5*time.Millisecond, s.Last)
}

func TestRunnerInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, NewRunner(60).Interval)
}

func TestRunnerOnce(t *testing.T) {
	r := NewRunner(60)
	calls := 0
	r.Once(func() { calls++ })

	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(1), r.Stats.Count)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	r := NewRunner(1000)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	done := make(chan struct{})
	go func() {
		r.Run(ctx, func() {
			calls++
			if calls == 3 {
				cancel()
			}
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, int64(3), r.Stats.Count)
}
