package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/triggershq/client-go/internal/apierrors"
)

// Defaults applied when the corresponding option is not set.
const (
	DefaultBaseURL = "https://api.triggershq.dev"
	DefaultTimeout = 30 * time.Second
)

// Client is the HTTP API client. It is safe for concurrent use: all fields
// are set at construction and read-only afterwards.
type Client struct {
	baseURL          string
	apiKey           string
	signingSecret    string
	defaultRequestID string
	httpClient       *http.Client
	logger           zerolog.Logger
	retry            *RetryConfig // nil means no retries, ever
	now              func() time.Time
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithTimeout sets the total round-trip timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithSigningSecret enables request signing with the shared secret.
func WithSigningSecret(secret string) Option {
	return func(c *Client) {
		c.signingSecret = secret
	}
}

// WithRequestID sets a default X-Request-ID attached to every request that
// does not carry its own.
func WithRequestID(id string) Option {
	return func(c *Client) {
		c.defaultRequestID = id
	}
}

// WithLogger sets the logger used for per-request debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRetry enables opt-in retries. The executor never retries unless this
// is set: automatic retries on a non-idempotent POST could duplicate
// events, so the decision stays with the caller.
func WithRetry(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithClock overrides the wall-clock source used for signature timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a new API client. It fails fast, before any network
// activity, when the API key is empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: zerolog.Nop(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes a request and decodes the response body into result.
// Statuses below 400 are successes (an empty body is a success with a zero
// result, not an error); statuses at or above 400 are classified into an
// *apierrors.APIError; transport failures surface as *apierrors.NetworkError.
func (c *Client) Do(ctx context.Context, req *Request, result any) error {
	var bodyBytes []byte
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyBytes = data
	}

	query := EncodeQuery(req.Query)
	fullURL := c.baseURL + req.Path
	if query != "" {
		fullURL += "?" + query
	}

	attempts := 1
	if c.retry != nil {
		attempts += c.retry.MaxRetries
	}

	var resp *http.Response
	var lastErr error
	start := c.now()

	for attempt := 0; attempt < attempts; attempt++ {
		httpReq, err := c.buildHTTPRequest(ctx, req, fullURL, query, bodyBytes)
		if err != nil {
			return err
		}

		resp, lastErr = c.httpClient.Do(httpReq)
		final := attempt+1 >= attempts
		if lastErr == nil {
			if final || !c.retry.ShouldRetry(attempt, resp.StatusCode) {
				break
			}
			resp.Body.Close()
		} else if final {
			break
		}
		if err := c.retry.Wait(ctx, attempt); err != nil {
			return &apierrors.NetworkError{Err: err, URL: c.baseURL}
		}
	}

	if lastErr != nil {
		nerr := &apierrors.NetworkError{Err: describeTransportError(lastErr), URL: c.baseURL}
		c.logger.Debug().
			Str("method", req.Method).
			Str("path", req.Path).
			Err(nerr).
			Msg("request failed")
		return nerr
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("duration", c.now().Sub(start)).
		Msg("request completed")

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierrors.NetworkError{Err: err, URL: c.baseURL}
	}

	if resp.StatusCode >= 400 {
		return apierrors.Classify(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// buildHTTPRequest constructs the outgoing request, including auth and
// signature headers. Called once per attempt so each retry carries a fresh
// signature timestamp.
func (c *Client) buildHTTPRequest(ctx context.Context, req *Request, fullURL, query string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)

	// Explicit per-request id takes precedence over the configured default.
	if req.RequestID != "" {
		httpReq.Header.Set("X-Request-ID", req.RequestID)
	} else if c.defaultRequestID != "" {
		httpReq.Header.Set("X-Request-ID", c.defaultRequestID)
	}

	if c.signingSecret != "" {
		sigCtx := NewSignatureContext(req.Method, req.Path, query, c.now(), body)
		httpReq.Header.Set(HeaderSignatureTimestamp, sigCtx.Timestamp)
		httpReq.Header.Set(HeaderSignature, Sign(c.signingSecret, sigCtx))
		httpReq.Header.Set(HeaderSignatureVersion, SignatureVersion)
	}

	return httpReq, nil
}

// describeTransportError names the failure category so callers see
// "timeout" or "connection refused" rather than a bare wrapped error.
func describeTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("timeout: %w", err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("canceled: %w", err)
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("DNS failure: %w", err)
	}
	return err
}
