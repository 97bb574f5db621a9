// Package middleware exposes [net/http.RoundTripper] decorators for outbound
// storefront calls: request-ID injection and bearer-credential attachment.
//
// # Decorators
//
//   - [RequestID] — stamps a correlation header on every outbound request that
//     does not already carry one.
//   - [Bearer] — attaches the current session credential as an Authorization
//     header, read from a [TokenSource] per request.
//
// Decorators compose in the usual way: each wraps a base transport and
// delegates to it after adjusting headers.
//
// # Architecture boundaries
//
// This package adjusts outbound HTTP requests. It does NOT classify responses,
// retry, or touch session state — those decisions belong to the client and
// its consumers.
//
// # What this package must NOT do
//
//   - Inspect or decode response bodies.
//   - Cache credentials (the [TokenSource] is consulted on every request).
//   - Overwrite a correlation header the caller already set.
package middleware
