package api

import "time"

// Event represents an event record as returned by the API.
type Event struct {
	ID             string            `json:"id"`
	Source         string            `json:"source"`
	EventType      string            `json:"eventType"`
	Payload        map[string]any    `json:"payload,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	AcknowledgedAt *time.Time        `json:"acknowledgedAt,omitempty"`
}

// CreateEventRequest represents the POST /v1/events request body.
type CreateEventRequest struct {
	Source    string            `json:"source"`
	EventType string            `json:"eventType"`
	Payload   map[string]any    `json:"payload,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// InboxPage represents the GET /v1/inbox response. NextCursor is an opaque
// token: present means more results exist, absent means exhausted.
type InboxPage struct {
	Events     []Event `json:"events"`
	Limit      int     `json:"limit"`
	Cursor     string  `json:"cursor,omitempty"`
	NextCursor string  `json:"nextCursor,omitempty"`
}
