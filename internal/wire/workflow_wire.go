package wire

import (
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/adaptor"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWorkflow(
	r chi.Router,
	workflowHandler *adaptor.WorkflowHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	// Booking lifecycle transitions
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// PUT /api/admin/bookings/{id}/approve - Approve a pending booking, creating its unpaid transaction
		r.Put("/api/admin/bookings/{id}/approve", workflowHandler.ApproveBooking)

		// PUT /api/admin/bookings/{id}/decline - Decline a pending booking
		r.Put("/api/admin/bookings/{id}/decline", workflowHandler.DeclineBooking)

		// PUT /api/admin/bookings/{id}/cancel - Cancel a pending or approved booking
		r.Put("/api/admin/bookings/{id}/cancel", workflowHandler.CancelBooking)

		// PUT /api/admin/bookings/{id}/return - Mark an approved booking returned
		r.Put("/api/admin/bookings/{id}/return", workflowHandler.ReturnBooking)
	})

	// Payment transactions
	r.Route("/api/admin/transactions", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// GET /api/admin/transactions - List transactions, optional ?status= filter
		r.Get("/", workflowHandler.ListTransactions)

		// PUT /api/admin/transactions/{id}/pay - Record payment received
		r.Put("/{id}/pay", workflowHandler.MarkTransactionPaid)
	})

	// Late return penalties
	r.Route("/api/admin/late-returns", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// GET /api/admin/late-returns - Penalty ledger
		r.Get("/", workflowHandler.ListLateReturns)

		// POST /api/admin/late-returns/scan - Run the late return scan
		r.Post("/scan", workflowHandler.ScanLateReturns)
	})
}
