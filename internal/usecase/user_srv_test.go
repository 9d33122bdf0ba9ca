package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture() (*fakeUserRepo, *fakeSessionRepo, UserService) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()

	repo := &repository.Repository{
		User:    users,
		Session: sessions,
	}

	return users, sessions, NewUserService(repo, zap.NewNop())
}

func TestRegisterMember(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesStaffAccount", func(t *testing.T) {
		users, _, svc := newUserFixture()

		resp, err := svc.RegisterMember(ctx, &request.RegisterMemberRequest{
			Name:     "Maria Santos",
			Email:    "maria@coop.ph",
			Password: "secret123",
			Role:     "staff",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.RoleStaff, resp.Role)
		require.Len(t, users.users, 1)
		for _, user := range users.users {
			assert.True(t, user.IsActive)
			assert.NotEqual(t, "secret123", user.PasswordHash)
		}
	})

	t.Run("RejectsDuplicateEmail", func(t *testing.T) {
		_, _, svc := newUserFixture()

		req := &request.RegisterMemberRequest{
			Name:     "Maria Santos",
			Email:    "maria@coop.ph",
			Password: "secret123",
			Role:     "farmer",
		}

		_, err := svc.RegisterMember(ctx, req)
		require.NoError(t, err)

		_, err = svc.RegisterMember(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("RejectsUnknownRole", func(t *testing.T) {
		_, _, svc := newUserFixture()

		_, err := svc.RegisterMember(ctx, &request.RegisterMemberRequest{
			Name:     "Maria Santos",
			Email:    "maria@coop.ph",
			Password: "secret123",
			Role:     "superuser",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestDeactivateUser(t *testing.T) {
	ctx := context.Background()

	seedUser := func(users *fakeUserRepo, role entity.UserRole) *entity.User {
		user := &entity.User{
			Base:     entity.Base{ID: uuid.New()},
			Name:     "Juan Dela Cruz",
			Email:    "juan@example.ph",
			Role:     role,
			IsActive: true,
		}
		require.NoError(t, users.Create(ctx, user))
		return user
	}

	t.Run("DisablesAccountAndRevokesSessions", func(t *testing.T) {
		users, sessions, svc := newUserFixture()
		user := seedUser(users, entity.RoleFarmer)

		token := uuid.New()
		require.NoError(t, sessions.Create(ctx, &entity.Session{
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			UserID:     user.ID,
			Token:      token,
			ExpiresAt:  time.Now().Add(time.Hour),
		}))

		require.NoError(t, svc.DeactivateUser(ctx, user.ID.String()))

		stored, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsActive)

		session, err := sessions.FindValidSession(ctx, token.String())
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("RejectsSecondDeactivation", func(t *testing.T) {
		users, _, svc := newUserFixture()
		user := seedUser(users, entity.RoleFarmer)

		require.NoError(t, svc.DeactivateUser(ctx, user.ID.String()))

		err := svc.DeactivateUser(ctx, user.ID.String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already deactivated")
	})

	t.Run("RefusesAdminAccounts", func(t *testing.T) {
		users, _, svc := newUserFixture()
		user := seedUser(users, entity.RoleAdmin)

		err := svc.DeactivateUser(ctx, user.ID.String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot deactivate")
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, _, svc := newUserFixture()

		err := svc.DeactivateUser(ctx, uuid.NewString())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
