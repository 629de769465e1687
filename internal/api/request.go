package api

import (
	"net/url"
	"strings"
)

// Param is a single query parameter. Query parameters are carried as a
// slice rather than a map so the order the caller specified survives into
// both the request URL and the signed canonical query.
type Param struct {
	Key   string
	Value string
}

// Request describes one API call. It is built per call, owned exclusively
// by that call, and never mutated after being handed to Do.
type Request struct {
	Method    string
	Path      string // must begin with "/"
	Query     []Param
	Body      any
	RequestID string
}

// EncodeQuery renders params as a query string, preserving caller order.
// Params with empty keys or empty values are omitted. The result is used
// verbatim both on the URL and in the canonical string, so server-side
// verification can work from the raw request URL.
func EncodeQuery(params []Param) string {
	var b strings.Builder
	for _, p := range params {
		if p.Key == "" || p.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
