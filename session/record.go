package session

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrDecode is returned by [DecodeIdentity] when the persisted "user" entry
// cannot be deserialized. Callers treat a corrupt record as logged out.
var ErrDecode = errors.New("identity decode failed")

// Record is the persisted session pair. Both fields are present or both are
// absent; a Record with exactly one populated field is corrupt.
type Record struct {
	Token string
	User  string
}

// IsZero describes the iszero operation and its observable behavior.
func (r Record) IsZero() bool {
	return r.Token == "" && r.User == ""
}

// Complete reports whether both entries are present.
func (r Record) Complete() bool {
	return r.Token != "" && r.User != ""
}

// Identity mirrors the goShop identity shape for codec purposes. The session
// package keeps its own copy to avoid an upward import.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// EncodeIdentity serializes an identity into the persisted "user" entry.
func EncodeIdentity(id Identity) (string, error) {
	data, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeIdentity deserializes the persisted "user" entry. Any malformed
// input yields [ErrDecode]; partial adoption is never possible because the
// caller discards the whole record on error.
func DecodeIdentity(raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, ErrDecode
	}

	// Unknown fields are tolerated: the upstream may add profile fields
	// without breaking stored sessions.
	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return Identity{}, ErrDecode
	}

	if id.ID == "" || id.Email == "" {
		return Identity{}, ErrDecode
	}

	return id, nil
}
