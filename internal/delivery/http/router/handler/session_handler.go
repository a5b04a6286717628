package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "rxconsole/internal/delivery/context"
	"rxconsole/internal/delivery/http/response"
	"rxconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler signs the operator in and out.
type SessionHandler struct {
	sessions      usecase.SessionUsecase
	notifications usecase.NotificationCenter
	badge         usecase.Badge
	logger        *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(
	sessions usecase.SessionUsecase,
	notifications usecase.NotificationCenter,
	badge usecase.Badge,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions:      sessions,
		notifications: notifications,
		badge:         badge,
		logger:        logger,
	}
}

// SignInRequest carries the bearer token issued by the platform backend.
type SignInRequest struct {
	Token string `json:"token" validate:"required"`
}

// SignIn stores the token and resynchronizes the notification surfaces that failed without one.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	info, err := h.sessions.SignIn(ctx, req.Token)
	if err != nil {
		return err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	if _, err := h.notifications.Load(ctx, 1); err != nil {
		logger.Warn("Failed to load notifications after sign in", slog.Any("error", err))
	}
	if _, err := h.badge.Refresh(ctx); err != nil {
		logger.Warn("Failed to refresh unread badge after sign in", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, info, "Signed in")
}

// SignOut forgets the token.
func (h *SessionHandler) SignOut(c echo.Context) error {
	if err := h.sessions.SignOut(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

// Current describes the signed-in operator.
func (h *SessionHandler) Current(c echo.Context) error {
	info, err := h.sessions.Current(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, info, "")
}
