package interview

import (
	"context"
	"log"
	"time"
)

// Runner drives the service's per-second tick from wall-clock time. The core
// never depends on it: tests call Tick directly, and any frontend that keeps
// its own clock can do the same.
type Runner struct {
	svc      *Service
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewRunner(svc *Service, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{svc: svc, interval: interval}
}

// Start launches the tick loop. Calling Start on a running Runner restarts
// it, so at most one loop is ever live.
func (r *Runner) Start(ctx context.Context) {
	r.Stop()
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.run(ctx)
}

// Stop cancels the loop and waits for it to exit, so no tick can fire after
// Stop returns. Stopping a never-started Runner is a no-op.
func (r *Runner) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	select {
	case <-r.done:
	case <-time.After(100 * time.Millisecond):
		log.Printf("tick runner: slow shutdown")
	}
	r.cancel = nil
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := r.svc.Session()
			if snap.Session.Status != StatusInProgress {
				continue
			}
			if _, err := r.svc.Tick(ctx, snap.Session.CurrentCandidateID); err != nil {
				log.Printf("tick runner: %v", err)
			}
		}
	}
}
