package service

import "context"

// TokenSource supplies the bearer token attached to every backend call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
