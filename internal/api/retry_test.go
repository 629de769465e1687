package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRetryConfig_RetryableStatuses(t *testing.T) {
	cfg := DefaultRetryConfig()

	for _, status := range []int{408, 429, 500, 502, 503, 504} {
		assert.True(t, cfg.RetryableOn(status), "status %d should be retryable", status)
	}
	for _, status := range []int{200, 201, 400, 401, 404, 409, 413} {
		assert.False(t, cfg.RetryableOn(status), "status %d should not be retryable", status)
	}
}

func TestShouldRetry_RespectsMaxRetries(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.MaxRetries = 2

	assert.True(t, cfg.ShouldRetry(0, 500))
	assert.True(t, cfg.ShouldRetry(1, 500))
	assert.False(t, cfg.ShouldRetry(2, 500))
	assert.False(t, cfg.ShouldRetry(0, 404))
}

func TestDelay_ExponentialGrowthCappedAtMax(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     0,
	}

	assert.Equal(t, 100*time.Millisecond, cfg.Delay(0))
	assert.Equal(t, 200*time.Millisecond, cfg.Delay(1))
	assert.Equal(t, 400*time.Millisecond, cfg.Delay(2))
	assert.Equal(t, time.Second, cfg.Delay(10), "delay must be capped at MaxDelay")
}

func TestDelay_JitterStaysWithinBounds(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     0.2,
	}

	for i := 0; i < 100; i++ {
		d := cfg.Delay(0)
		assert.GreaterOrEqual(t, d, 80*time.Millisecond)
		assert.LessOrEqual(t, d, 120*time.Millisecond)
	}
}

func TestWait_HonorsContextCancellation(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  time.Minute,
		MaxDelay:   time.Minute,
		Multiplier: 1.0,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := cfg.Wait(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}
