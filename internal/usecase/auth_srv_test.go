package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture() (*fakeUserRepo, *fakeSessionRepo, AuthService) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()

	repo := &repository.Repository{
		User:    users,
		Session: sessions,
	}

	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	return users, sessions, NewAuthService(repo, config, zap.NewNop())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesFarmerWithSession", func(t *testing.T) {
		users, sessions, svc := newAuthFixture()

		resp, err := svc.Register(ctx, &request.RegisterRequest{
			Name:     "Juan Dela Cruz",
			Email:    "juan@example.ph",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.RoleFarmer, resp.Role)
		assert.NotEmpty(t, resp.Token)
		assert.True(t, resp.ExpiresAt.After(time.Now()))

		require.Len(t, users.users, 1)
		for _, user := range users.users {
			assert.NotEqual(t, "secret123", user.PasswordHash)
		}
		assert.Len(t, sessions.sessions, 1)
	})

	t.Run("RejectsDuplicateEmail", func(t *testing.T) {
		_, _, svc := newAuthFixture()

		_, err := svc.Register(ctx, &request.RegisterRequest{
			Name:     "Juan Dela Cruz",
			Email:    "juan@example.ph",
			Password: "secret123",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, &request.RegisterRequest{
			Name:     "Another Juan",
			Email:    "juan@example.ph",
			Password: "secret456",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("RejectsShortPassword", func(t *testing.T) {
		_, _, svc := newAuthFixture()

		_, err := svc.Register(ctx, &request.RegisterRequest{
			Name:     "Juan Dela Cruz",
			Email:    "juan@example.ph",
			Password: "nope",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(svc AuthService) {
		_, err := svc.Register(ctx, &request.RegisterRequest{
			Name:     "Juan Dela Cruz",
			Email:    "juan@example.ph",
			Password: "secret123",
		})
		require.NoError(t, err)
	}

	t.Run("ValidCredentials", func(t *testing.T) {
		_, _, svc := newAuthFixture()
		register(svc)

		resp, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "juan@example.ph",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, svc := newAuthFixture()
		register(svc)

		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "juan@example.ph",
			Password: "wrongpass",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, _, svc := newAuthFixture()

		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "nobody@example.ph",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("DeactivatedAccount", func(t *testing.T) {
		users, _, svc := newAuthFixture()
		register(svc)

		for _, user := range users.users {
			user.IsActive = false
		}

		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "juan@example.ph",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deactivated")
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	_, sessions, svc := newAuthFixture()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Juan Dela Cruz",
		Email:    "juan@example.ph",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	session, err := sessions.FindValidSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
