package goShop

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SessionState represents the lifecycle state of the client-side session.
type SessionState uint8

const (
	// StateUninitialized is an exported constant or variable used by the storefront client.
	StateUninitialized SessionState = iota
	// StateInitializing is an exported constant or variable used by the storefront client.
	StateInitializing
	// StateAnonymous is an exported constant or variable used by the storefront client.
	StateAnonymous
	// StateAuthenticated is an exported constant or variable used by the storefront client.
	StateAuthenticated
)

// String describes the string operation and its observable behavior.
func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Identity is the authenticated user's profile as issued by the server.
// It is replaced wholesale on login and cleared wholesale on logout; the
// [SessionStore] is its only owner.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// SessionSnapshot is the externally observable session tuple returned by
// [SessionStore.Snapshot]. It is a by-value copy; mutating it has no effect
// on the store.
//
// Invariant: IsAuthenticated == (Credential != ""), and Identity is non-nil
// iff Credential is present. No partial state is ever observable.
type SessionSnapshot struct {
	Identity        *Identity
	Credential      string
	IsAuthenticated bool
	IsInitializing  bool
	State           SessionState
}

// LoginResult is the decoded response of POST /auth/login.
type LoginResult struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// RegisterRequest is the input for [Client.Register]. Role defaults to
// [Config.Account.DefaultRole] when empty.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Money is a price value that tolerates JSON numbers and numeric strings on
// input and is always transmitted as a JSON number. The dual acceptance
// mirrors what form layers feed the upstream API; it is an input affordance,
// not a wire format to emulate elsewhere.
type Money float64

// UnmarshalJSON describes the unmarshaljson operation and its observable behavior.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price value %q", string(data))
	}
	*m = Money(v)
	return nil
}

// MarshalJSON describes the marshaljson operation and its observable behavior.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

// Units is a stock count that tolerates JSON numbers and numeric strings on
// input and is always transmitted as a JSON number.
type Units int

// UnmarshalJSON describes the unmarshaljson operation and its observable behavior.
func (u *Units) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*u = 0
		return nil
	}
	// Numeric strings from form layers may carry a fractional part; the
	// upstream normalizes with parseInt semantics, so truncate.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid stock value %q", string(data))
	}
	*u = Units(int(v))
	return nil
}

// MarshalJSON describes the marshaljson operation and its observable behavior.
func (u Units) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(u))
}

// Product is the catalog entity returned by the products endpoints.
type Product struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Stock       Units  `json:"stock"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// ProductInput is the create/update payload: [Product] minus server-owned
// fields. Price and Stock accept numbers or numeric strings and are
// normalized to numbers before transmission.
type ProductInput struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Stock       Units  `json:"stock"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
