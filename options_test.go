package triggers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/triggershq/client-go/internal/api"
)

func TestClientConfig_Defaults(t *testing.T) {
	cfg := &clientConfig{}

	assert.Empty(t, cfg.signingSecret)
	assert.Nil(t, cfg.retry)
	assert.Nil(t, cfg.httpClient)
}

func TestOption_Setters(t *testing.T) {
	httpClient := &http.Client{}
	cfg := &clientConfig{}

	for _, opt := range []Option{
		WithBaseURL("https://example.com"),
		WithHTTPClient(httpClient),
		WithTimeout(10 * time.Second),
		WithSigningSecret("s3cret"),
		WithRequestID("req-1"),
	} {
		opt(cfg)
	}

	assert.Equal(t, "https://example.com", cfg.baseURL)
	assert.Same(t, httpClient, cfg.httpClient)
	assert.Equal(t, 10*time.Second, cfg.timeout)
	assert.Equal(t, "s3cret", cfg.signingSecret)
	assert.Equal(t, "req-1", cfg.defaultRequestID)
}

func TestWithRetries(t *testing.T) {
	cfg := &clientConfig{}

	WithRetries(5)(cfg)
	assert.NotNil(t, cfg.retry)
	assert.Equal(t, 5, cfg.retry.MaxRetries)

	WithRetries(0)(cfg)
	assert.Nil(t, cfg.retry, "zero retries disables the retry config entirely")
}

func TestWithRetryOn(t *testing.T) {
	cfg := &clientConfig{}

	WithRetries(2)(cfg)
	WithRetryOn([]int{429})(cfg)

	assert.True(t, cfg.retry.RetryableOn(429))
	assert.False(t, cfg.retry.RetryableOn(500))
	assert.Equal(t, 2, cfg.retry.MaxRetries)
}

func TestListConfig_QueryOrder(t *testing.T) {
	cfg := &listConfig{}
	for _, opt := range []ListOption{
		WithSource("app"),
		WithEventType("user.created"),
		WithStatus(StatusPending),
		WithCursor("c1"),
		WithLimit(25),
	} {
		opt(cfg)
	}

	assert.Equal(t, []api.Param{
		{Key: "source", Value: "app"},
		{Key: "eventType", Value: "user.created"},
		{Key: "status", Value: "pending"},
		{Key: "cursor", Value: "c1"},
		{Key: "limit", Value: "25"},
	}, cfg.query())
}

func TestWaitConfig_Matches(t *testing.T) {
	event := &Event{Source: "app", EventType: "user.created"}

	cfg := &waitConfig{}
	assert.True(t, cfg.Matches(event), "no criteria matches everything")

	cfg = &waitConfig{source: "app"}
	assert.True(t, cfg.Matches(event))

	cfg = &waitConfig{source: "other"}
	assert.False(t, cfg.Matches(event))

	cfg = &waitConfig{eventType: "user.created", predicate: func(e *Event) bool { return e.Source == "app" }}
	assert.True(t, cfg.Matches(event))

	cfg = &waitConfig{predicate: func(e *Event) bool { return false }}
	assert.False(t, cfg.Matches(event))
}
