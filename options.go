package triggers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/triggershq/client-go/internal/api"
)

const (
	defaultWaitTimeout  = 60 * time.Second
	defaultPollInterval = 2 * time.Second
)

// clientConfig holds configuration for the client. It is assembled once in
// New and read-only afterwards.
type clientConfig struct {
	baseURL          string
	httpClient       *http.Client
	timeout          time.Duration
	signingSecret    string
	defaultRequestID string
	logger           zerolog.Logger
	retry            *api.RetryConfig
}

// listConfig holds inbox listing parameters.
type listConfig struct {
	source    string
	eventType string
	status    string
	cursor    string
	limit     int
	limitSet  bool
}

// waitConfig holds configuration for waiting on events.
type waitConfig struct {
	source       string
	eventType    string
	predicate    func(*Event) bool
	timeout      time.Duration
	pollInterval time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// ListOption configures an inbox listing call.
type ListOption func(*listConfig)

// WaitOption configures event waiting.
type WaitOption func(*waitConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the total round-trip timeout for each call.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithSigningSecret enables request signing. Every request carries
// X-Signature, X-Signature-Timestamp and X-Signature-Version headers
// computed over the canonical request string with HMAC-SHA256.
func WithSigningSecret(secret string) Option {
	return func(c *clientConfig) {
		c.signingSecret = secret
	}
}

// WithRequestID sets a default X-Request-ID attached to every request.
// A per-call request id takes precedence. The value is opaque; no format
// is enforced.
func WithRequestID(id string) Option {
	return func(c *clientConfig) {
		c.defaultRequestID = id
	}
}

// WithLogger sets a logger for per-request debug logging. By default the
// client logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRetries enables retries with the default backoff policy. Retries are
// strictly opt-in: without this option every call issues exactly one HTTP
// request. Callers retrying event creation should supply an idempotency
// key in metadata so the server can deduplicate.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		if count <= 0 {
			c.retry = nil
			return
		}
		if c.retry == nil {
			c.retry = api.DefaultRetryConfig()
		}
		c.retry.MaxRetries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry. Only
// meaningful together with WithRetries.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		if c.retry == nil {
			c.retry = api.DefaultRetryConfig()
			c.retry.MaxRetries = 0
		}
		set := make(map[int]struct{}, len(statusCodes))
		for _, code := range statusCodes {
			set[code] = struct{}{}
		}
		c.retry.RetryableOn = func(statusCode int) bool {
			_, ok := set[statusCode]
			return ok
		}
	}
}

// WithSource filters the listing to events from one source.
func WithSource(source string) ListOption {
	return func(c *listConfig) {
		c.source = source
	}
}

// WithEventType filters the listing to one event type.
func WithEventType(eventType string) ListOption {
	return func(c *listConfig) {
		c.eventType = eventType
	}
}

// WithStatus filters the listing by lifecycle status.
func WithStatus(status EventStatus) ListOption {
	return func(c *listConfig) {
		c.status = string(status)
	}
}

// WithCursor resumes a listing from an opaque cursor previously returned
// as Page.NextCursor. Cursors are forwarded verbatim and never inspected.
func WithCursor(cursor string) ListOption {
	return func(c *listConfig) {
		c.cursor = cursor
	}
}

// WithLimit sets the page size. The value is forwarded unchanged; the
// server bounds it to 1-100 and rejects anything else as a validation
// error.
func WithLimit(limit int) ListOption {
	return func(c *listConfig) {
		c.limit = limit
		c.limitSet = true
	}
}

// WithMatchingSource waits only for events from the given source.
func WithMatchingSource(source string) WaitOption {
	return func(c *waitConfig) {
		c.source = source
	}
}

// WithMatchingEventType waits only for events of the given type.
func WithMatchingEventType(eventType string) WaitOption {
	return func(c *waitConfig) {
		c.eventType = eventType
	}
}

// WithPredicate waits only for events matching a custom predicate.
func WithPredicate(fn func(*Event) bool) WaitOption {
	return func(c *waitConfig) {
		c.predicate = fn
	}
}

// WithWaitTimeout sets the timeout for waiting. Default: 60 seconds.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the polling interval. Default: 2 seconds.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}

// query renders the listing parameters in fixed order. Filters are
// additive; unset fields are omitted entirely.
func (l *listConfig) query() []api.Param {
	params := []api.Param{
		{Key: "source", Value: l.source},
		{Key: "eventType", Value: l.eventType},
		{Key: "status", Value: l.status},
		{Key: "cursor", Value: l.cursor},
	}
	if l.limitSet {
		params = append(params, api.Param{Key: "limit", Value: strconv.Itoa(l.limit)})
	}
	return params
}

// Matches checks if an event matches the wait criteria.
func (w *waitConfig) Matches(e *Event) bool {
	if w.source != "" && e.Source != w.source {
		return false
	}
	if w.eventType != "" && e.EventType != w.eventType {
		return false
	}
	if w.predicate != nil && !w.predicate(e) {
		return false
	}
	return true
}
