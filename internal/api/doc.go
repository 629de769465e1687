// Package api implements the HTTP protocol layer of the Triggers client:
// request construction, optional request signing, transport, response
// decoding, and error classification.
//
// The flow for every call is the same:
//
//	Request -> (sign) -> transport -> decode success | classify failure
//
// Signing (enabled by WithSigningSecret) computes an HMAC-SHA256 over a
// canonical string of five newline-joined fields:
//
//	METHOD\nPATH\nCANONICAL_QUERY\nUNIX_TIMESTAMP\nSHA256_HEX(BODY)
//
// and attaches it as X-Signature (standard base64), together with
// X-Signature-Timestamp and X-Signature-Version. The canonical query is
// byte-identical to the query string sent on the URL, so the server can
// verify against the raw request.
//
// The executor performs no implicit retries; retries exist only behind the
// explicit WithRetry option.
package api
