// Package impl contains the console's table, notification and session use cases.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "rxconsole/internal/delivery/context"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/errors"
	"rxconsole/internal/usecase"
)

// SessionService holds the operator's bearer token and hands it to the REST client.
type SessionService struct {
	tokens    repository.TokenRepository
	inspector service.TokenInspector
	logger    *slog.Logger
	now       func() time.Time
}

// NewSessionService is the constructor for SessionService.
func NewSessionService(
	tokens repository.TokenRepository,
	inspector service.TokenInspector,
	logger *slog.Logger,
) *SessionService {
	return &SessionService{
		tokens:    tokens,
		inspector: inspector,
		logger:    logger,
		now:       time.Now,
	}
}

var (
	_ usecase.SessionUsecase = (*SessionService)(nil)
	_ service.TokenSource    = (*SessionService)(nil)
)

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *SessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn stores a bearer token until it expires.
func (srv *SessionService) SignIn(ctx context.Context, token string) (*usecase.SessionInfo, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, err := srv.inspector.Inspect(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}

	now := srv.now()
	if claims.Expired(now) {
		return nil, domainerrors.ErrSessionExpired
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(now)
	}

	if err := srv.tokens.Set(ctx, token, ttl); err != nil {
		return nil, errors.Wrap(err, "failed to store session token")
	}

	info := sessionInfo(claims)
	srv.log(ctx).Info("Operator signed in", slog.String("subject", info.Subject), slog.String("role", info.Role))

	return info, nil
}

// SignOut forgets the stored token.
func (srv *SessionService) SignOut(ctx context.Context) error {
	if err := srv.tokens.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session token")
	}
	srv.log(ctx).Info("Operator signed out")

	return nil
}

// Current describes the signed-in operator.
func (srv *SessionService) Current(ctx context.Context) (*usecase.SessionInfo, error) {
	_, claims, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	return sessionInfo(claims), nil
}

// Token returns the bearer token for the next backend call.
func (srv *SessionService) Token(ctx context.Context) (string, error) {
	token, _, err := srv.load(ctx)

	return token, err
}

func (srv *SessionService) load(ctx context.Context) (string, *service.Claims, error) {
	token, err := srv.tokens.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return "", nil, domainerrors.ErrSessionMissing
		}

		return "", nil, errors.Wrap(err, "failed to read session token")
	}

	claims, err := srv.inspector.Inspect(token)
	if err != nil {
		return "", nil, domainerrors.ErrSessionMissing.WithDetails(err.Error())
	}

	if claims.Expired(srv.now()) {
		if err := srv.tokens.Clear(ctx); err != nil {
			srv.log(ctx).Warn("Failed to clear expired token", slog.Any("error", err))
		}

		return "", nil, domainerrors.ErrSessionExpired
	}

	return token, claims, nil
}

func sessionInfo(claims *service.Claims) *usecase.SessionInfo {
	info := &usecase.SessionInfo{
		Subject: claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time
		info.ExpiresAt = &expiresAt
	}

	return info
}
