package wire

import (
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/adaptor"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (farmer) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Request an equipment rental
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - View own booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// PUT /api/bookings/{id}/return - Self-service return after the rental period
		r.Put("/api/bookings/{id}/return", bookingHandler.ReturnOwnBooking)
	})

	// ==================== STAFF ROUTES ====================
	// Registered as full paths: the lifecycle transitions live under the same
	// /api/admin/bookings subtree in the workflow wiring.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		// GET /api/admin/bookings - List bookings, optional ?status= filter
		r.Get("/api/admin/bookings", bookingHandler.ListBookings)

		// GET /api/admin/bookings/{id} - View any booking
		r.Get("/api/admin/bookings/{id}", bookingHandler.GetBookingByID)
	})
}
