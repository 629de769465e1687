package triggers

import (
	"time"

	"github.com/triggershq/client-go/internal/api"
)

// EventStatus is the lifecycle state of an event in the inbox.
type EventStatus string

const (
	// StatusPending marks an event that has not been acknowledged yet.
	StatusPending EventStatus = "pending"
	// StatusAcknowledged marks an event that a consumer has acknowledged.
	StatusAcknowledged EventStatus = "acknowledged"
)

// Event is an event record in the inbox.
type Event struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	EventType string `json:"eventType"`
	// Payload is the caller-supplied event body: a string-keyed map of
	// JSON-like values, open-ended by design.
	Payload  map[string]any    `json:"payload,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Status   EventStatus       `json:"status"`
	// CreatedAt is assigned by the server.
	CreatedAt time.Time `json:"createdAt"`
	// AcknowledgedAt is nil until the event has been acknowledged.
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
}

// CreateEventParams describes a new event to submit.
type CreateEventParams struct {
	Source    string
	EventType string
	Payload   map[string]any
	// Metadata may carry an idempotency key for server-side deduplication
	// of retried creations; the client does not validate it.
	Metadata map[string]string
	// RequestID overrides the client's default X-Request-ID for this call.
	// Treated as an opaque string; no format is enforced.
	RequestID string
}

// Page is one page of inbox results.
type Page struct {
	Events []*Event `json:"events"`
	Limit  int      `json:"limit"`
	// Cursor is the opaque token that produced this page, empty for the
	// first page.
	Cursor string `json:"cursor,omitempty"`
	// NextCursor is the opaque token for the next page, empty when the
	// listing is exhausted. Never decode or construct cursors; only pass
	// them back via WithCursor.
	NextCursor string `json:"nextCursor,omitempty"`
}

// HasMore reports whether another page exists.
func (p *Page) HasMore() bool {
	return p.NextCursor != ""
}

func eventFromAPI(e *api.Event) *Event {
	return &Event{
		ID:             e.ID,
		Source:         e.Source,
		EventType:      e.EventType,
		Payload:        e.Payload,
		Metadata:       e.Metadata,
		Status:         EventStatus(e.Status),
		CreatedAt:      e.CreatedAt,
		AcknowledgedAt: e.AcknowledgedAt,
	}
}

func pageFromAPI(p *api.InboxPage) *Page {
	events := make([]*Event, 0, len(p.Events))
	for i := range p.Events {
		events = append(events, eventFromAPI(&p.Events[i]))
	}
	return &Page{
		Events:     events,
		Limit:      p.Limit,
		Cursor:     p.Cursor,
		NextCursor: p.NextCursor,
	}
}
