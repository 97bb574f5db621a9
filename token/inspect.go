package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is an exported constant or variable used by the storefront client.
var ErrMalformed = errors.New("token: malformed bearer token")

// Claims is the unverified claim readout of a bearer token. Zero time fields
// mean the corresponding claim was absent.
type Claims struct {
	Subject   string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type wireClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect parses raw without verifying its signature and returns the claim
// readout. It fails only on structural problems; expired tokens parse fine.
func Inspect(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrMalformed
	}

	var wc wireClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &wc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	c := Claims{
		Subject: wc.Subject,
		Email:   wc.Email,
		Role:    wc.Role,
	}
	if wc.IssuedAt != nil {
		c.IssuedAt = wc.IssuedAt.Time
	}
	if wc.ExpiresAt != nil {
		c.ExpiresAt = wc.ExpiresAt.Time
	}

	return c, nil
}

// Expired reports whether the token carries an expiry claim that has passed
// as of now. Tokens without an expiry claim report false.
func (c Claims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return now.After(c.ExpiresAt)
}

// TimeToLive returns the remaining lifetime as of now, zero when expired or
// when no expiry claim is present.
func (c Claims) TimeToLive(now time.Time) time.Duration {
	if c.ExpiresAt.IsZero() {
		return 0
	}
	ttl := c.ExpiresAt.Sub(now)
	if ttl < 0 {
		return 0
	}
	return ttl
}
