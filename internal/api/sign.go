package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// SignatureVersion tags the canonicalization algorithm so the server can
// evolve it later without breaking older clients.
const SignatureVersion = "v1"

// Signature header names.
const (
	HeaderSignature          = "X-Signature"
	HeaderSignatureTimestamp = "X-Signature-Timestamp"
	HeaderSignatureVersion   = "X-Signature-Version"
)

// SignatureContext holds the five inputs the signature is computed over.
// It is derived entirely from the outgoing request plus wall-clock time
// and is never persisted.
type SignatureContext struct {
	Method         string
	Path           string
	CanonicalQuery string
	Timestamp      string // decimal unix seconds
	BodyHash       string // lowercase hex SHA-256 of the exact body bytes
}

// NewSignatureContext builds a SignatureContext for a request. A nil body
// hashes identically to an empty body.
func NewSignatureContext(method, path, canonicalQuery string, now time.Time, body []byte) SignatureContext {
	return SignatureContext{
		Method:         strings.ToUpper(method),
		Path:           path,
		CanonicalQuery: canonicalQuery,
		Timestamp:      strconv.FormatInt(now.Unix(), 10),
		BodyHash:       BodyHash(body),
	}
}

// BodyHash returns the lowercase hex SHA-256 digest of the body bytes.
// An absent body digests the empty byte sequence.
func BodyHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// CanonicalString joins the five signature inputs with newlines in fixed
// order: method, path, canonical query, timestamp, body hash.
func (c SignatureContext) CanonicalString() string {
	return strings.Join([]string{
		c.Method,
		c.Path,
		c.CanonicalQuery,
		c.Timestamp,
		c.BodyHash,
	}, "\n")
}

// Sign computes the HMAC-SHA256 of the canonical string using the shared
// secret and returns it as standard base64 with padding. Pure function:
// identical inputs always produce identical signatures.
func Sign(secret string, ctx SignatureContext) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ctx.CanonicalString()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
