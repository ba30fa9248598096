package gate

import (
	"context"
	"time"
)

// Pool is a counting permit pool bounding simultaneous provider calls.
//
// Acquire blocks until a permit is free or ctx ends. The returned release
// must be called exactly once; callers defer it right after a successful
// acquire so no exit path can leak a permit.
type Pool struct {
	sem            chan struct{}
	acquireTimeout time.Duration
}

// NewPool creates a pool with max permits. acquireTimeout of 0 means a
// caller waits indefinitely for a permit.
func NewPool(max int, acquireTimeout time.Duration) *Pool {
	if max < 1 {
		max = 1
	}
	return &Pool{
		sem:            make(chan struct{}, max),
		acquireTimeout: acquireTimeout,
	}
}

func (p *Pool) Acquire(ctx context.Context) (release func(), ok bool) {
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}

	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }, true
	case <-ctx.Done():
		return nil, false
	}
}

// InFlight returns the number of permits currently held.
func (p *Pool) InFlight() int {
	return len(p.sem)
}
