package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/usecase"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service  usecase.BookingService
	workflow usecase.WorkflowService
	log      *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, workflow usecase.WorkflowService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:  service,
		workflow: workflow,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	page := request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), 10),
	)

	bookings, err := h.service.GetUserBookings(r.Context(), userID.String(), &page)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ReturnOwnBooking handles PUT /api/bookings/{id}/return (protected)
func (h *BookingHandler) ReturnOwnBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	result, err := h.workflow.FarmerMarkReturned(r.Context(), userID.String(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "return booking")
		return
	}

	message := "success"
	if result.AlreadyReturned {
		message = "already returned"
	}
	utils.ResponseSuccess(w, message, result)
}

// ==================== ADMIN METHODS ====================

// ListBookings handles GET /api/admin/bookings (staff only)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListBookingsRequest{
		PaginatedRequest: request.NewPaginatedRequest(
			utils.ParseInt(query.Get("page"), 1),
			utils.ParseInt(query.Get("per_page"), 10),
		),
		Status: query.Get("status"),
	}

	bookings, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/admin/bookings/{id} (staff only)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
