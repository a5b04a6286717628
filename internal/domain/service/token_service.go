package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the console reads from the operator's bearer token.
// The signature is verified by the backend on every call, not here.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Expired reports whether the token carries an expiry that has passed.
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return false
	}

	return !now.Before(c.ExpiresAt.Time)
}

// TokenInspector decodes a bearer token without verifying it.
type TokenInspector interface {
	// Inspect parses the token and returns its claims.
	Inspect(token string) (*Claims, error)
}
