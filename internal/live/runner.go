package live

import (
	"time"

	"golang.org/x/net/context"
)

// Runner funnels refresh requests into a single worker. The trigger channel
// is buffered at one, so any number of triggers arriving while a refresh is
// in flight collapse into exactly one queued follow-up.
type Runner struct {
	interval time.Duration
	refresh  func(ctx context.Context)
	trigger  chan struct{}
}

func NewRunner(interval time.Duration, refresh func(ctx context.Context)) *Runner {
	return &Runner{
		interval: interval,
		refresh:  refresh,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger requests a refresh. Never blocks; a refresh already queued
// absorbs the request.
func (r *Runner) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Run refreshes on every trigger and on the interval tick until ctx is
// cancelled. Refreshes run one at a time on this goroutine.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.trigger:
			r.refresh(ctx)
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}
