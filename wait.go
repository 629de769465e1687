package triggers

import (
	"context"
	"fmt"
	"time"
)

// WaitForEvent polls the inbox until an event matching the given criteria
// arrives, and returns the first match. Already-arrived events match too.
//
// Example:
//
//	event, err := client.WaitForEvent(ctx,
//	    triggers.WithMatchingEventType("user.created"),
//	    triggers.WithWaitTimeout(2*time.Minute),
//	)
func (c *Client) WaitForEvent(ctx context.Context, opts ...WaitOption) (*Event, error) {
	cfg := newWaitConfig(opts)

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	for {
		match, err := c.findMatch(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}

		if err := sleepInterval(ctx, cfg.pollInterval); err != nil {
			return nil, err
		}
	}
}

// WaitForEventCount polls the inbox until at least count distinct matching
// events exist, and returns the first count of them.
func (c *Client) WaitForEventCount(ctx context.Context, count int, opts ...WaitOption) ([]*Event, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", count)
	}
	if count == 0 {
		return []*Event{}, nil
	}

	cfg := newWaitConfig(opts)

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	// Track seen event IDs to avoid duplicates across polls
	seen := make(map[string]struct{})
	var results []*Event

	for {
		err := c.EachEvent(ctx, func(e *Event) bool {
			if _, ok := seen[e.ID]; ok {
				return true
			}
			if cfg.Matches(e) {
				seen[e.ID] = struct{}{}
				results = append(results, e)
			}
			return len(results) < count
		}, cfg.listOptions()...)
		if err != nil {
			return nil, err
		}
		if len(results) >= count {
			return results[:count], nil
		}

		if err := sleepInterval(ctx, cfg.pollInterval); err != nil {
			return nil, err
		}
	}
}

func newWaitConfig(opts []WaitOption) *waitConfig {
	cfg := &waitConfig{
		timeout:      defaultWaitTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// listOptions translates the wait filters into inbox query filters so the
// server narrows pages before the predicate runs client-side.
func (w *waitConfig) listOptions() []ListOption {
	var opts []ListOption
	if w.source != "" {
		opts = append(opts, WithSource(w.source))
	}
	if w.eventType != "" {
		opts = append(opts, WithEventType(w.eventType))
	}
	return opts
}

// findMatch scans the full listing for the first event matching cfg.
func (c *Client) findMatch(ctx context.Context, cfg *waitConfig) (*Event, error) {
	var match *Event
	err := c.EachEvent(ctx, func(e *Event) bool {
		if cfg.Matches(e) {
			match = e
			return false
		}
		return true
	}, cfg.listOptions()...)
	if err != nil {
		return nil, err
	}
	return match, nil
}

func sleepInterval(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
