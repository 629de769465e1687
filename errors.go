package triggers

import "github.com/triggershq/client-go/internal/apierrors"

// Kind is the closed set of error categories. Exactly one kind applies to
// every failed call, so callers can branch with a single switch:
//
//	var apiErr *triggers.APIError
//	if errors.As(err, &apiErr) {
//	    switch apiErr.Kind {
//	    case triggers.KindRateLimited:
//	        // back off
//	    case triggers.KindNotFound:
//	        // gone
//	    }
//	}
type Kind = apierrors.Kind

// Error kinds.
const (
	KindValidation      = apierrors.KindValidation
	KindUnauthorized    = apierrors.KindUnauthorized
	KindNotFound        = apierrors.KindNotFound
	KindConflict        = apierrors.KindConflict
	KindPayloadTooLarge = apierrors.KindPayloadTooLarge
	KindRateLimited     = apierrors.KindRateLimited
	KindInternal        = apierrors.KindInternal
	KindNetwork         = apierrors.KindNetwork
	KindUnknown         = apierrors.KindUnknown
)

// APIError is an HTTP error classified from a server response. It carries
// the server's error code, message, details and request id when the error
// envelope was present, or a synthesized UNKNOWN_ERROR otherwise.
type APIError = apierrors.APIError

// NetworkError is a transport-level failure: the request never received a
// response (connection refused, DNS failure, timeout). It has no HTTP
// status; its kind is always KindNetwork.
type NetworkError = apierrors.NetworkError

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned by New when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = apierrors.ErrClientClosed

	// ErrValidation is returned when the server rejects a request as invalid.
	ErrValidation = apierrors.ErrValidation

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = apierrors.ErrEventNotFound

	// ErrConflict is returned when a request conflicts with server state.
	ErrConflict = apierrors.ErrConflict

	// ErrPayloadTooLarge is returned when an event payload exceeds the server limit.
	ErrPayloadTooLarge = apierrors.ErrPayloadTooLarge

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServerInternal is returned when the server reports an internal failure.
	ErrServerInternal = apierrors.ErrServerInternal

	// ErrNetwork is returned when the request never reaches the server.
	ErrNetwork = apierrors.ErrNetwork
)
