package wire

import (
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/adaptor"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/reports", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// GET /api/admin/reports/summary - Dashboard counters
		r.Get("/summary", reportHandler.DashboardSummary)

		// GET /api/admin/reports/revenue?period=week|month|year - Revenue series
		r.Get("/revenue", reportHandler.RevenueReport)

		// GET /api/admin/reports/export?year=&month= - Monthly xlsx export
		r.Get("/export", reportHandler.ExportMonthlyReport)
	})
}
