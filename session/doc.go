// Package session provides durable persistence for the client-side session
// record: the opaque bearer token and the serialized identity, stored as two
// entries keyed "token" and "user".
//
// # Record layout
//
// The persisted layout is two scalar string entries, both present or both
// absent — never a combined blob. [Record] is the in-transit
// pair; the identity codec ([EncodeIdentity]/[DecodeIdentity]) owns the
// serialized "user" entry.
//
// # Architecture boundaries
//
// This package owns the [Backend] implementations (file, redis, memory) and
// the identity codec. It does NOT decide what a valid session is, adopt or
// discard state, or classify API failures — those responsibilities belong to
// the goShop SessionStore.
//
// # What this package must NOT do
//
//   - Import goShop or token (no upward imports).
//   - Write the token entry without the user entry, or vice versa.
//   - Interpret the bearer token contents.
package session
