package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

type requestIDTransport struct {
	base   http.RoundTripper
	header string
}

// RequestID returns a [net/http.RoundTripper] that stamps header with a fresh
// UUID on every outbound request that does not already carry one. A header set
// upstream wins, which keeps caller-chosen correlation IDs intact.
//
//	Docs: docs/middleware.md
func RequestID(base http.RoundTripper, header string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if header == "" {
		header = "X-Request-ID"
	}

	return &requestIDTransport{
		base:   base,
		header: header,
	}
}

// RoundTrip describes the roundtrip operation and its observable behavior.
func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(t.header) != "" {
		return t.base.RoundTrip(req)
	}

	// Per RoundTripper contract the request must not be mutated in place.
	clone := req.Clone(req.Context())
	clone.Header.Set(t.header, uuid.NewString())

	return t.base.RoundTrip(clone)
}
