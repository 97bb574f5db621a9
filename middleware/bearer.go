package middleware

import "net/http"

// TokenSource yields the credential to attach to outbound requests. An empty
// string means anonymous; no header is attached.
type TokenSource interface {
	Token() string
}

type bearerTransport struct {
	base   http.RoundTripper
	source TokenSource
}

// Bearer returns a [net/http.RoundTripper] that reads a credential from
// source on every request and attaches it as "Authorization: Bearer <token>"
// when non-empty. An Authorization header already present on the request is
// left untouched.
//
//	Docs: docs/middleware.md
func Bearer(base http.RoundTripper, source TokenSource) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	return &bearerTransport{
		base:   base,
		source: source,
	}
}

// RoundTrip describes the roundtrip operation and its observable behavior.
func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.source == nil || req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}

	token := t.source.Token()
	if token == "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)

	return t.base.RoundTrip(clone)
}
