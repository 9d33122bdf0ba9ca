package wire

import (
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/adaptor"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEquipment(
	r chi.Router,
	equipmentHandler *adaptor.EquipmentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The catalog is browsable without an account.
	r.Get("/api/equipment", equipmentHandler.GetEquipment)
	r.Get("/api/equipment/{id}", equipmentHandler.GetEquipmentByID)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/equipment", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// POST /api/admin/equipment - Add equipment to the catalog
		r.Post("/", equipmentHandler.CreateEquipment)

		// PUT /api/admin/equipment/{id}/status - Change availability
		r.Put("/{id}/status", equipmentHandler.UpdateEquipmentStatus)
	})
}
