package triggers

import "context"

// GetInbox lists one page of events. Filters combine additively; an
// omitted filter means no restriction on that field. Resume a listing by
// passing the previous page's NextCursor via WithCursor; a fresh listing
// (no cursor) always starts from the current head.
func (c *Client) GetInbox(ctx context.Context, opts ...ListOption) (*Page, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := &listConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	resp, err := c.apiClient.GetInbox(ctx, cfg.query())
	if err != nil {
		return nil, err
	}

	return pageFromAPI(resp), nil
}

// ListAllEvents fetches every event matching the filters by following
// NextCursor until the listing is exhausted. The loop is restartable:
// calling again re-lists from the current head.
func (c *Client) ListAllEvents(ctx context.Context, opts ...ListOption) ([]*Event, error) {
	var all []*Event
	err := c.EachEvent(ctx, func(e *Event) bool {
		all = append(all, e)
		return true
	}, opts...)
	if err != nil {
		return nil, err
	}
	return all, nil
}

// EachEvent calls fn for every event matching the filters, page by page,
// until the listing is exhausted or fn returns false.
func (c *Client) EachEvent(ctx context.Context, fn func(*Event) bool, opts ...ListOption) error {
	if err := c.checkClosed(); err != nil {
		return err
	}

	cfg := &listConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	for {
		resp, err := c.apiClient.GetInbox(ctx, cfg.query())
		if err != nil {
			return err
		}

		page := pageFromAPI(resp)
		for _, e := range page.Events {
			if !fn(e) {
				return nil
			}
		}

		if !page.HasMore() {
			return nil
		}
		cfg.cursor = page.NextCursor
	}
}
