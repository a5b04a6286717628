package repository

import (
	"context"
	"errors"
	"time"
)

// ErrTokenNotFound is returned when no bearer token has been persisted.
var ErrTokenNotFound = errors.New("session token not found")

// TokenRepository persists the operator's bearer token.
type TokenRepository interface {
	Get(ctx context.Context) (string, error)

	// Set stores the token; a zero ttl keeps it until cleared.
	Set(ctx context.Context, token string, ttl time.Duration) error

	Clear(ctx context.Context) error
}
