package adaptor

import (
	"net/http"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/usecase"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WorkflowHandler exposes the staff-side booking lifecycle: approvals,
// declines, cancellations, returns, payments and the late return scan.
type WorkflowHandler struct {
	service usecase.WorkflowService
	penalty usecase.PenaltyService
	log     *zap.Logger
}

func NewWorkflowHandler(service usecase.WorkflowService, penalty usecase.PenaltyService, log *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		service: service,
		penalty: penalty,
		log:     log.With(zap.String("handler", "workflow")),
	}
}

// ApproveBooking handles PUT /api/admin/bookings/{id}/approve (staff only)
func (h *WorkflowHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	result, err := h.service.ApproveBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "approve booking")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// DeclineBooking handles PUT /api/admin/bookings/{id}/decline (staff only)
func (h *WorkflowHandler) DeclineBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.DeclineBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "decline booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/admin/bookings/{id}/cancel (staff only)
func (h *WorkflowHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ReturnBooking handles PUT /api/admin/bookings/{id}/return (staff only)
func (h *WorkflowHandler) ReturnBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	result, err := h.service.MarkReturned(r.Context(), bookingID)
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

// MarkTransactionPaid handles PUT /api/admin/transactions/{id}/pay (staff only)
func (h *WorkflowHandler) MarkTransactionPaid(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "id")
	if transactionID == "" {
		utils.ResponseBadRequest(w, "Transaction ID is required", nil)
		return
	}

	txn, err := h.service.MarkTransactionPaid(r.Context(), transactionID)
	if err != nil {
		handleServiceError(w, h.log, err, "mark transaction paid")
		return
	}

	utils.ResponseSuccess(w, "success", txn)
}

// ListTransactions handles GET /api/admin/transactions (staff only)
func (h *WorkflowHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListTransactionsRequest{
		PaginatedRequest: request.NewPaginatedRequest(
			utils.ParseInt(query.Get("page"), 1),
			utils.ParseInt(query.Get("per_page"), 10),
		),
		Status: query.Get("status"),
	}

	txns, err := h.service.ListTransactions(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list transactions")
		return
	}

	utils.ResponseSuccess(w, "success", txns)
}

// ScanLateReturns handles POST /api/admin/late-returns/scan (staff only)
func (h *WorkflowHandler) ScanLateReturns(w http.ResponseWriter, r *http.Request) {
	result, err := h.penalty.ScanLateReturns(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "scan late returns")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// ListLateReturns handles GET /api/admin/late-returns (staff only)
func (h *WorkflowHandler) ListLateReturns(w http.ResponseWriter, r *http.Request) {
	penalties, err := h.penalty.ListPenalties(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list late returns")
		return
	}

	utils.ResponseSuccess(w, "success", penalties)
}
