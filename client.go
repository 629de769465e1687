package triggers

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/triggershq/client-go/internal/api"
)

// Client is the main Triggers API client. A single instance may issue
// arbitrarily many concurrent calls: its configuration is read-only after
// construction and no state is shared between calls.
type Client struct {
	apiClient *api.Client

	mu     sync.RWMutex
	closed bool
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithLogger(cfg.logger),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.signingSecret != "" {
		apiOpts = append(apiOpts, api.WithSigningSecret(cfg.signingSecret))
	}
	if cfg.defaultRequestID != "" {
		apiOpts = append(apiOpts, api.WithRequestID(cfg.defaultRequestID))
	}
	if cfg.retry != nil && cfg.retry.MaxRetries > 0 {
		apiOpts = append(apiOpts, api.WithRetry(cfg.retry))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return apiClient, nil
}

// New creates a new Triggers client with the given API key. It fails fast,
// before any network activity, when the key is empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: api.DefaultBaseURL,
		timeout: api.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// CreateEvent submits a new event and returns the server's record of it.
// The executor does not retry creation implicitly; callers that enable
// WithRetries should carry an idempotency key in params.Metadata.
func (c *Client) CreateEvent(ctx context.Context, params CreateEventParams) (*Event, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	req := api.CreateEventRequest{
		Source:    params.Source,
		EventType: params.EventType,
		Payload:   params.Payload,
		Metadata:  params.Metadata,
	}

	resp, err := c.apiClient.CreateEvent(ctx, req, params.RequestID)
	if err != nil {
		return nil, err
	}

	return eventFromAPI(resp), nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if eventID == "" {
		return nil, fmt.Errorf("event id is required")
	}

	resp, err := c.apiClient.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return eventFromAPI(resp), nil
}

// AcknowledgeEvent marks an event as acknowledged and returns the updated
// record.
func (c *Client) AcknowledgeEvent(ctx context.Context, eventID string) (*Event, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if eventID == "" {
		return nil, fmt.Errorf("event id is required")
	}

	resp, err := c.apiClient.AcknowledgeEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return eventFromAPI(resp), nil
}

// DeleteEvent deletes an event by id.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if eventID == "" {
		return fmt.Errorf("event id is required")
	}

	return c.apiClient.DeleteEvent(ctx, eventID)
}

// Close closes the client. Subsequent calls return ErrClientClosed. There
// are no background resources to release beyond idle transport
// connections.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// NewRequestID returns a fresh UUIDv4 suitable for use as an X-Request-ID.
// Request ids are opaque to both client and server; this is a convenience
// only.
func NewRequestID() string {
	return uuid.NewString()
}
