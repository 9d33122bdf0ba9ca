package wire

import (
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/adaptor"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Get("/api/user/profile", userHandler.GetProfile)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// GET /api/admin/users - List cooperative members
		r.Get("/", userHandler.GetUsers)

		// POST /api/admin/users - Register a member with an explicit role (admin only)
		r.With(middleware.Admin(log)).Post("/", userHandler.RegisterMember)

		// PUT /api/admin/users/{id}/deactivate - Disable an account (admin only)
		r.With(middleware.Admin(log)).Put("/{id}/deactivate", userHandler.DeactivateUser)
	})
}
