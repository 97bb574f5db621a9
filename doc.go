// Package goShop provides a storefront API client with a durable client-side
// session, bearer-credential injection, and uniform failure classification.
//
// The session (identity + bearer token) survives process restarts through a
// pluggable persistence backend, and every remote call returns either a
// decoded payload or a classified [APIError] that consumers branch on without
// re-deriving HTTP semantics.
//
// # Architecture boundaries
//
// goShop is the public surface. It exposes [Client], [Builder], [Config],
// [SessionStore], and value types (Product, Identity, SessionSnapshot).
// Session persistence lives in session/, passive token inspection in token/,
// transport decorators in middleware/, and metric exporters in
// metrics/export. Audit events and their dispatcher live in this package.
//
// # What this package must NOT do
//
//   - Retry a failed request. Classification is returned to the caller; the
//     caller decides between inline display and a login gate.
//   - Mutate the session from inside the gateway. Only [SessionStore.Login]
//     and [SessionStore.Logout] transition authentication state.
//   - Predict token expiry. Server-side expiry is detected reactively via an
//     Unauthorized classification, never locally enforced.
//
// # Session lifecycle
//
// Uninitialized → Initializing → {Authenticated, Anonymous}, with
// Authenticated ⇄ Anonymous via Login/Logout. There is no terminal state;
// the store lives for the process lifetime.
package goShop
