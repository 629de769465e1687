package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateEvent submits a new event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest, requestID string) (*Event, error) {
	var result Event
	apiReq := &Request{
		Method:    http.MethodPost,
		Path:      "/v1/events",
		Body:      req,
		RequestID: requestID,
	}
	if err := c.Do(ctx, apiReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var result Event
	apiReq := &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/events/%s", url.PathEscape(eventID)),
	}
	if err := c.Do(ctx, apiReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetInbox lists events. Filters are additive (AND-combined); the cursor
// is forwarded verbatim and never interpreted. The limit is passed through
// unchanged, including out-of-range values, which the server rejects.
func (c *Client) GetInbox(ctx context.Context, query []Param) (*InboxPage, error) {
	var result InboxPage
	apiReq := &Request{
		Method: http.MethodGet,
		Path:   "/v1/inbox",
		Query:  query,
	}
	if err := c.Do(ctx, apiReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AcknowledgeEvent marks an event as acknowledged and returns the updated
// record.
func (c *Client) AcknowledgeEvent(ctx context.Context, eventID string) (*Event, error) {
	var result Event
	apiReq := &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/events/%s/ack", url.PathEscape(eventID)),
	}
	if err := c.Do(ctx, apiReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteEvent deletes an event. The server responds 204 with an empty body.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	apiReq := &Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/v1/events/%s", url.PathEscape(eventID)),
	}
	return c.Do(ctx, apiReq, nil)
}
