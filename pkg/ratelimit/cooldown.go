package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Cooldown tracks the last accepted request time per user and rejects
// anything arriving inside the configured window.
//
// State lives in memory only and is lost on restart. The mutex covers the
// whole read-then-write so two concurrent requests from the same user cannot
// both pass the check.
type Cooldown struct {
	window time.Duration

	mu   sync.Mutex
	last map[string]time.Time
}

func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{
		window: window,
		last:   make(map[string]time.Time),
	}
}

// CheckAndUpdate reports whether the user may proceed at time now. When
// allowed, now is recorded as the user's new last-request time; when
// rejected, the state is left untouched and the remaining wait is returned
// in whole seconds (rounded up).
func (c *Cooldown) CheckAndUpdate(userID string, now time.Time) (allowed bool, remaining int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if last, ok := c.last[userID]; ok {
		if elapsed := now.Sub(last); elapsed < c.window {
			return false, int(math.Ceil((c.window - elapsed).Seconds()))
		}
	}
	c.last[userID] = now
	return true, 0
}
