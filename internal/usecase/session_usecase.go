package usecase

import (
	"context"
	"time"
)

// SessionInfo describes the operator signed in to the console.
type SessionInfo struct {
	Subject   string     `json:"subject,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// SessionUsecase manages the bearer token attached to backend calls.
type SessionUsecase interface {
	SignIn(ctx context.Context, token string) (*SessionInfo, error)
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (*SessionInfo, error)
}
