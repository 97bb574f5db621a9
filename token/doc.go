// Package token provides passive inspection of bearer tokens held by the
// session store: claim readout and expiry hints without any signature
// verification, since a client never holds the server's signing key.
//
// # Architecture boundaries
//
// Inspection results are advisory. The server remains the sole authority on
// token validity; a token that looks live here can still be rejected upstream
// and classified as Unauthorized.
//
// # What this package must NOT do
//
//   - Verify signatures or pretend to (there is no key material client-side).
//   - Gate requests on expiry — the client always sends and lets the server
//     decide.
//   - Refresh or mint tokens.
package token
