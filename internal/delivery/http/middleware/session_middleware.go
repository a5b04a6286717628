package middleware

import (
	"rxconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionKey is where RequireSession stores the operator's SessionInfo.
const SessionKey = "session"

// SessionMiddleware rejects console calls made without a live bearer token.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession answers 401 when no token is stored or it has expired, before any backend call.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		info, err := m.sessions.Current(c.Request().Context())
		if err != nil {
			return err
		}
		c.Set(SessionKey, info)

		return next(c)
	}
}
