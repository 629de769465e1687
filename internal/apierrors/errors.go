// Package apierrors provides shared error types for the Triggers client.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies an API failure into one of a closed set of categories.
// Callers can branch on it with a single exhaustive switch.
type Kind string

const (
	// KindValidation indicates the server rejected the request as invalid (400).
	KindValidation Kind = "validation"
	// KindUnauthorized indicates the API key is invalid or expired (401).
	KindUnauthorized Kind = "unauthorized"
	// KindNotFound indicates the requested event does not exist (404).
	KindNotFound Kind = "not_found"
	// KindConflict indicates the request conflicts with server state (409).
	KindConflict Kind = "conflict"
	// KindPayloadTooLarge indicates the event payload exceeded the server limit (413).
	KindPayloadTooLarge Kind = "payload_too_large"
	// KindRateLimited indicates the rate limit has been exceeded (429).
	KindRateLimited Kind = "rate_limited"
	// KindInternal indicates a server-side failure (500).
	KindInternal Kind = "internal"
	// KindNetwork indicates the request never received a response.
	KindNetwork Kind = "network"
	// KindUnknown covers any other HTTP error status.
	KindUnknown Kind = "unknown"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrValidation is returned when the server rejects a request as invalid.
	ErrValidation = errors.New("request validation failed")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")

	// ErrConflict is returned when a request conflicts with server state.
	ErrConflict = errors.New("conflict with server state")

	// ErrPayloadTooLarge is returned when an event payload exceeds the server limit.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServerInternal is returned when the server reports an internal failure.
	ErrServerInternal = errors.New("internal server error")

	// ErrNetwork is returned when the request never reaches the server.
	ErrNetwork = errors.New("network failure")
)

// unknownCode is synthesized when the server error body is absent or malformed.
const unknownCode = "UNKNOWN_ERROR"

// maxRawBody bounds how much of a non-JSON error body is kept as the message.
const maxRawBody = 512

// APIError represents an HTTP error from the Triggers API.
type APIError struct {
	Kind       Kind
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindValidation:
		return target == ErrValidation
	case KindUnauthorized:
		return target == ErrUnauthorized
	case KindNotFound:
		return target == ErrEventNotFound
	case KindConflict:
		return target == ErrConflict
	case KindPayloadTooLarge:
		return target == ErrPayloadTooLarge
	case KindRateLimited:
		return target == ErrRateLimited
	case KindInternal:
		return target == ErrServerInternal
	}
	return false
}

// NetworkError represents a transport-level failure: the request never
// received a response (connection refused, DNS failure, timeout). It is
// distinguishable from classified HTTP errors by its KindNetwork and the
// absence of an HTTP status.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("network error reaching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Kind always reports KindNetwork.
func (e *NetworkError) Kind() Kind {
	return KindNetwork
}

// Is implements errors.Is for sentinel error matching.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// errorEnvelope is the server's error body shape.
type errorEnvelope struct {
	Error struct {
		Code      string         `json:"code"`
		Message   string         `json:"message"`
		Details   map[string]any `json:"details"`
		RequestID string         `json:"request_id"`
	} `json:"error"`
}

// KindForStatus maps an HTTP status code to its error kind. The mapping is
// closed: every status in the table has a fixed kind, anything else at or
// above 400 is KindUnknown. Statuses below 400 are never passed here.
func KindForStatus(status int) Kind {
	switch status {
	case 400:
		return KindValidation
	case 401:
		return KindUnauthorized
	case 404:
		return KindNotFound
	case 409:
		return KindConflict
	case 413:
		return KindPayloadTooLarge
	case 429:
		return KindRateLimited
	case 500:
		return KindInternal
	}
	return KindUnknown
}

// Classify converts an HTTP error status and raw response body into an
// APIError. It never fails: a missing or malformed body yields a
// synthesized UNKNOWN_ERROR code with the raw text (truncated) as message.
func Classify(status int, body []byte) *APIError {
	apiErr := &APIError{
		Kind:       KindForStatus(status),
		StatusCode: status,
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Code != "" {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
		apiErr.RequestID = env.Error.RequestID
		if apiErr.Details == nil {
			apiErr.Details = map[string]any{}
		}
		return apiErr
	}

	raw := body
	if len(raw) > maxRawBody {
		raw = raw[:maxRawBody]
	}
	apiErr.Code = unknownCode
	apiErr.Message = string(raw)
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("HTTP %d with no error body", status)
	}
	apiErr.Details = map[string]any{}
	return apiErr
}
