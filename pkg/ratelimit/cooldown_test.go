package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldown_CheckAndUpdate(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first request is always allowed", func(t *testing.T) {
		c := NewCooldown(10 * time.Second)
		allowed, remain := c.CheckAndUpdate("user-1", base)
		assert.True(t, allowed)
		assert.Equal(t, 0, remain)
	})

	t.Run("second request inside the window is rejected with ceil remaining", func(t *testing.T) {
		c := NewCooldown(10 * time.Second)
		c.CheckAndUpdate("user-1", base)

		allowed, remain := c.CheckAndUpdate("user-1", base.Add(3500*time.Millisecond))
		assert.False(t, allowed)
		// 10s - 3.5s = 6.5s, reported as 7
		assert.Equal(t, 7, remain)
	})

	t.Run("rejection does not move the window", func(t *testing.T) {
		c := NewCooldown(10 * time.Second)
		c.CheckAndUpdate("user-1", base)
		c.CheckAndUpdate("user-1", base.Add(9*time.Second))

		// measured from the first request, not from the rejected one
		allowed, _ := c.CheckAndUpdate("user-1", base.Add(10*time.Second))
		assert.True(t, allowed)
	})

	t.Run("request after the window is allowed again", func(t *testing.T) {
		c := NewCooldown(10 * time.Second)
		c.CheckAndUpdate("user-1", base)

		allowed, remain := c.CheckAndUpdate("user-1", base.Add(10*time.Second))
		assert.True(t, allowed)
		assert.Equal(t, 0, remain)
	})

	t.Run("users do not share state", func(t *testing.T) {
		c := NewCooldown(10 * time.Second)
		c.CheckAndUpdate("user-1", base)

		allowed, _ := c.CheckAndUpdate("user-2", base.Add(time.Second))
		assert.True(t, allowed)
	})
}
