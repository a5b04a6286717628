package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/errors"
	mockRepo "rxconsole/internal/mocks/repository"
	mockSvc "rxconsole/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (*SessionService, *mockRepo.MockTokenRepository, *mockSvc.MockTokenInspector) {
	tokens := mockRepo.NewMockTokenRepository(t)
	inspector := mockSvc.NewMockTokenInspector(t)

	srv := NewSessionService(tokens, inspector, testLogger())
	srv.now = testClock

	return srv, tokens, inspector
}

func claimsExpiringAt(at time.Time) *service.Claims {
	return &service.Claims{
		Role:  "admin",
		Email: "ops@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			ExpiresAt: jwt.NewNumericDate(at),
		},
	}
}

func TestSessionService_SignIn(t *testing.T) {
	srv, tokens, inspector := createTestSessionService(t)
	ctx := context.Background()

	inspector.EXPECT().Inspect("abc.def.ghi").Return(claimsExpiringAt(fixedNow.Add(time.Hour)), nil).Once()
	tokens.EXPECT().Set(ctx, "abc.def.ghi", time.Hour).Return(nil).Once()

	info, err := srv.SignIn(ctx, "Bearer abc.def.ghi")

	require.NoError(t, err)
	assert.Equal(t, "admin-1", info.Subject)
	assert.Equal(t, "admin", info.Role)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, info.ExpiresAt.Equal(fixedNow.Add(time.Hour)))
}

func TestSessionService_SignInRejects(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		srv, _, _ := createTestSessionService(t)

		_, err := srv.SignIn(context.Background(), "Bearer ")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		srv, _, inspector := createTestSessionService(t)
		inspector.EXPECT().Inspect("garbage").Return(nil, errors.New("token is malformed")).Once()

		_, err := srv.SignIn(context.Background(), "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		srv, _, inspector := createTestSessionService(t)
		inspector.EXPECT().Inspect("old").Return(claimsExpiringAt(fixedNow.Add(-time.Minute)), nil).Once()

		_, err := srv.SignIn(context.Background(), "old")
		assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	})
}

func TestSessionService_Token(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		srv, tokens, _ := createTestSessionService(t)
		tokens.EXPECT().Get(ctx).Return("", repository.ErrTokenNotFound).Once()

		_, err := srv.Token(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrSessionMissing)
	})

	t.Run("expired is cleared", func(t *testing.T) {
		srv, tokens, inspector := createTestSessionService(t)
		tokens.EXPECT().Get(ctx).Return("old", nil).Once()
		inspector.EXPECT().Inspect("old").Return(claimsExpiringAt(fixedNow), nil).Once()
		tokens.EXPECT().Clear(ctx).Return(nil).Once()

		_, err := srv.Token(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	})

	t.Run("valid", func(t *testing.T) {
		srv, tokens, inspector := createTestSessionService(t)
		tokens.EXPECT().Get(ctx).Return("abc", nil).Once()
		inspector.EXPECT().Inspect("abc").Return(claimsExpiringAt(fixedNow.Add(time.Minute)), nil).Once()

		token, err := srv.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
	})
}

func TestSessionService_SignOut(t *testing.T) {
	srv, tokens, _ := createTestSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().Clear(ctx).Return(nil).Once()

	require.NoError(t, srv.SignOut(ctx))
}
