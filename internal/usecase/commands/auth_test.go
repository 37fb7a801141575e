//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	reqdto "rentledger/internal/handler/dto/request"
	"rentledger/internal/pkg/errs"
	"rentledger/internal/pkg/jwt"
	"rentledger/internal/pkg/password"
	"rentledger/internal/usecase/commands"
	"rentledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserReadStore struct {
	user *queries.AuthorizedUserView
	hash string
	err  error
}

func (s *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil || s.user.ID != id {
		return nil, nil
	}
	return s.user, nil
}

func (s *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	if s.user == nil || s.user.Email != email {
		return nil, "", nil
	}
	return s.user, s.hash, nil
}

func newAuthCommands(t *testing.T, store *fakeUserReadStore) (commands.AuthCommands, *jwt.Service, *fakeState) {
	t.Helper()
	service := jwt.NewService("unit-test-secret", 15*time.Minute, 24*time.Hour)
	state := &fakeState{}
	return commands.NewAuthCommands(&fakeUoW{state: state}, store, service), service, state
}

func activeUser(t *testing.T) (*queries.AuthorizedUserView, string) {
	t.Helper()
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		IsActive: true,
	}, hash
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials issue an access and refresh pair", func(t *testing.T) {
		user, hash := activeUser(t)
		uc, service, _ := newAuthCommands(t, &fakeUserReadStore{user: user, hash: hash})

		result, err := uc.Login(context.Background(), reqdto.LoginRequest{
			Email:    user.Email,
			Password: "password123",
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, user.ID, result.UserID)

		claims, err := service.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, user.Email, claims.Email)

		claims, err = service.ValidateToken(result.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("wrong password", func(t *testing.T) {
		user, hash := activeUser(t)
		uc, _, _ := newAuthCommands(t, &fakeUserReadStore{user: user, hash: hash})

		_, err := uc.Login(context.Background(), reqdto.LoginRequest{
			Email:    user.Email,
			Password: "password124",
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _ := newAuthCommands(t, &fakeUserReadStore{})

		_, err := uc.Login(context.Background(), reqdto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("store failure maps to invalid credentials", func(t *testing.T) {
		uc, _, _ := newAuthCommands(t, &fakeUserReadStore{err: errors.New("connection reset")})

		_, err := uc.Login(context.Background(), reqdto.LoginRequest{
			Email:    "asha@example.com",
			Password: "password123",
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		user, hash := activeUser(t)
		user.IsActive = false
		uc, _, _ := newAuthCommands(t, &fakeUserReadStore{user: user, hash: hash})

		_, err := uc.Login(context.Background(), reqdto.LoginRequest{
			Email:    user.Email,
			Password: "password123",
		})
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("malformed email never reaches the store", func(t *testing.T) {
		uc, _, _ := newAuthCommands(t, &fakeUserReadStore{err: errors.New("should not be called")})

		_, err := uc.Login(context.Background(), reqdto.LoginRequest{
			Email:    "not-an-email",
			Password: "password123",
		})
		require.Error(t, err)
		// The validation cause is marked, not wrapped; match with errs.Is.
		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
	})
}

func TestRefreshToken(t *testing.T) {
	login := func(t *testing.T, uc commands.AuthCommands, user *queries.AuthorizedUserView) *commands.TokenPair {
		t.Helper()
		result, err := uc.Login(context.Background(), reqdto.LoginRequest{
			Email:    user.Email,
			Password: "password123",
		})
		require.NoError(t, err)
		return result.TokenPair
	}

	t.Run("valid refresh token issues a fresh pair", func(t *testing.T) {
		user, hash := activeUser(t)
		uc, service, _ := newAuthCommands(t, &fakeUserReadStore{user: user, hash: hash})
		pair := login(t, uc, user)

		fresh, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
		require.NoError(t, err)

		claims, err := service.ValidateToken(fresh.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("access token is rejected as refresh token", func(t *testing.T) {
		user, hash := activeUser(t)
		uc, _, _ := newAuthCommands(t, &fakeUserReadStore{user: user, hash: hash})
		pair := login(t, uc, user)

		_, err := uc.RefreshToken(context.Background(), pair.AccessToken)
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("garbage token", func(t *testing.T) {
		uc, _, _ := newAuthCommands(t, &fakeUserReadStore{})

		_, err := uc.RefreshToken(context.Background(), "not-a-jwt")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
	})

	t.Run("user deleted after token issue", func(t *testing.T) {
		user, hash := activeUser(t)
		store := &fakeUserReadStore{user: user, hash: hash}
		uc, _, _ := newAuthCommands(t, store)
		pair := login(t, uc, user)

		store.user = nil
		_, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("user deactivated after token issue", func(t *testing.T) {
		user, hash := activeUser(t)
		uc, _, _ := newAuthCommands(t, &fakeUserReadStore{user: user, hash: hash})
		pair := login(t, uc, user)

		user.IsActive = false
		_, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
