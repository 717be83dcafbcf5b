package live

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunner_CoalescesTriggersDuringRefresh(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var refreshes atomic.Int64

	runner := NewRunner(time.Hour, func(context.Context) {
		refreshes.Add(1)
		if refreshes.Load() == 1 {
			close(started)
			<-release
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		runner.Run(ctx)
		close(done)
	}()

	runner.Trigger()
	<-started

	// Burst while the first refresh is still in flight.
	for i := 0; i < 10; i++ {
		runner.Trigger()
	}
	close(release)

	assert.Eventually(t, func() bool {
		return refreshes.Load() == 2
	}, 2*time.Second, 10*time.Millisecond)

	// No further refreshes pile up afterwards.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(2), refreshes.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunner_TriggerNeverBlocks(t *testing.T) {
	runner := NewRunner(time.Hour, func(context.Context) {})

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			runner.Trigger()
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("trigger blocked")
	}
}

func TestRunner_RefreshesOnInterval(t *testing.T) {
	var refreshes atomic.Int64
	runner := NewRunner(10*time.Millisecond, func(context.Context) {
		refreshes.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runner.Run(ctx)

	assert.Eventually(t, func() bool {
		return refreshes.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}
