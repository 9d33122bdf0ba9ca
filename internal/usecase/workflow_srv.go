package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/response"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/metrics"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WorkflowService owns the booking lifecycle transitions. Every transition is
// guarded by the booking's current status, so repeating a request is a no-op
// or an explicit error instead of a duplicate side effect.
type WorkflowService interface {
	ApproveBooking(ctx context.Context, bookingID string) (*response.ApproveBookingResponse, error)
	DeclineBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	MarkReturned(ctx context.Context, bookingID string) (*response.ReturnBookingResponse, error)

	// FarmerMarkReturned is the self-service variant: the booking must belong
	// to the farmer and its rental period must have ended.
	FarmerMarkReturned(ctx context.Context, userID, bookingID string) (*response.ReturnBookingResponse, error)

	MarkTransactionPaid(ctx context.Context, transactionID string) (*response.TransactionResponse, error)
	ListTransactions(ctx context.Context, req *request.ListTransactionsRequest) (*response.PaginatedResponse[response.TransactionResponse], error)
}

type workflowService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewWorkflowService(repo *repository.Repository, config *utils.Config, log *zap.Logger) WorkflowService {
	return &workflowService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "workflow")),
	}
}

// ApproveBooking flips a pending booking to approved and creates its unpaid
// payment transaction in one database transaction. When an unpaid transaction
// already exists for the booking the approval still succeeds and the duplicate
// is skipped.
func (s *workflowService) ApproveBooking(ctx context.Context, bookingID string) (*response.ApproveBookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking status is %s, cannot approve", booking.Status)
	}

	now := time.Now()
	txn := &entity.Transaction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		BookingID:     id,
		UserID:        booking.UserID,
		Amount:        booking.TotalPrice,
		Status:        entity.TransactionStatusUnpaid,
		PaymentMethod: booking.PaymentMethod,
	}

	result, err := s.repo.Workflow.ApproveBooking(ctx, id, now, txn)
	if err != nil {
		s.log.Error("Failed to approve booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("approve booking %s: %w", bookingID, err)
	}

	if !result.Approved {
		// Lost the race: another staff member approved or the booking moved on.
		return nil, fmt.Errorf("booking %s is no longer pending, cannot approve", bookingID)
	}

	metrics.IncTransition(string(entity.BookingStatusApproved))

	booking.Status = entity.BookingStatusApproved
	booking.ApprovedAt = &now

	s.log.Info("Booking approved",
		zap.String("booking_id", bookingID),
		zap.Bool("transaction_created", result.TransactionCreated),
		zap.Float64("amount", txn.Amount),
	)

	resp := &response.ApproveBookingResponse{
		Booking:            response.BookingToResponse(booking),
		TransactionCreated: result.TransactionCreated,
		DuplicateSkipped:   !result.TransactionCreated,
	}

	if result.TransactionCreated {
		txnResp := response.TransactionToResponse(txn)
		resp.Booking.Transaction = &txnResp
	}

	return resp, nil
}

func (s *workflowService) DeclineBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, entity.BookingStatusDeclined, "decline",
		entity.BookingStatusPending)
}

// CancelBooking cancels a pending or approved booking and voids any unpaid
// transaction tied to it.
func (s *workflowService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.transition(ctx, bookingID, entity.BookingStatusCancelled, "cancel",
		entity.BookingStatusPending, entity.BookingStatusApproved)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Transaction.CancelUnpaidByBooking(ctx, id); err != nil {
		s.log.Error("Failed to cancel unpaid transaction",
			zap.Error(err),
			zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel unpaid transaction for booking %s: %w", bookingID, err)
	}

	return booking, nil
}

func (s *workflowService) MarkReturned(ctx context.Context, bookingID string) (*response.ReturnBookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return s.markReturned(ctx, booking)
}

func (s *workflowService) FarmerMarkReturned(ctx context.Context, userID, bookingID string) (*response.ReturnBookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to return this booking")
	}

	if time.Now().Before(booking.EndDate) {
		return nil, fmt.Errorf("cannot mark as returned before the rental period ends")
	}

	return s.markReturned(ctx, booking)
}

func (s *workflowService) MarkTransactionPaid(ctx context.Context, transactionID string) (*response.TransactionResponse, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction ID format %s: %w", transactionID, err)
	}

	txn, err := s.repo.Transaction.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find transaction", zap.Error(err), zap.String("transaction_id", transactionID))
		return nil, fmt.Errorf("get transaction %s: %w", transactionID, err)
	}
	if txn == nil {
		return nil, fmt.Errorf("transaction %s not found", transactionID)
	}

	if txn.Status != entity.TransactionStatusUnpaid {
		return nil, fmt.Errorf("transaction status is %s, cannot mark paid", txn.Status)
	}

	now := time.Now()
	ok, err := s.repo.Transaction.MarkPaid(ctx, id, now)
	if err != nil {
		s.log.Error("Failed to mark transaction paid",
			zap.Error(err),
			zap.String("transaction_id", transactionID))
		return nil, fmt.Errorf("mark transaction %s paid: %w", transactionID, err)
	}
	if !ok {
		return nil, fmt.Errorf("transaction %s is no longer unpaid, cannot mark paid", transactionID)
	}

	txn.Status = entity.TransactionStatusPaid
	txn.PaidAt = &now

	s.log.Info("Transaction paid",
		zap.String("transaction_id", transactionID),
		zap.String("booking_id", txn.BookingID.String()),
		zap.Float64("amount", txn.Amount),
	)

	resp := response.TransactionToResponse(txn)
	return &resp, nil
}

func (s *workflowService) ListTransactions(ctx context.Context, req *request.ListTransactionsRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List transactions validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.TransactionStatus(req.Status)

	txns, err := s.repo.Transaction.FindAll(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	total, err := s.repo.Transaction.Count(ctx, status)
	if err != nil {
		s.log.Error("Failed to count transactions", zap.Error(err))
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	txnResponses := make([]response.TransactionResponse, len(txns))
	for i, txn := range txns {
		txnResponses[i] = response.TransactionToResponse(txn)
	}

	return response.NewPaginatedResponse(txnResponses, req.Page, req.PerPage, total), nil
}

// ==================== HELPER METHODS ====================

func (s *workflowService) transition(ctx context.Context, bookingID string, to entity.BookingStatus, action string, from ...entity.BookingStatus) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	ok, err := s.repo.Booking.TransitionStatus(ctx, id, to, from...)
	if err != nil {
		s.log.Error("Failed to transition booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("to", string(to)))
		return nil, fmt.Errorf("%s booking %s: %w", action, bookingID, err)
	}
	if !ok {
		return nil, fmt.Errorf("booking status is %s, cannot %s", booking.Status, action)
	}

	metrics.IncTransition(string(to))

	booking.Status = to

	s.log.Info("Booking transitioned",
		zap.String("booking_id", bookingID),
		zap.String("to", string(to)),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *workflowService) markReturned(ctx context.Context, booking *entity.Booking) (*response.ReturnBookingResponse, error) {
	// Repeating a return changes nothing, but the caller is told so.
	if booking.Status == entity.BookingStatusReturned {
		return &response.ReturnBookingResponse{
			Booking:         response.BookingToResponse(booking),
			AlreadyReturned: true,
		}, nil
	}

	now := time.Now()
	ok, err := s.repo.Booking.MarkReturned(ctx, booking.ID, now)
	if err != nil {
		s.log.Error("Failed to mark booking returned",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("mark booking %s returned: %w", booking.ID.String(), err)
	}
	if !ok {
		return nil, fmt.Errorf("booking status is %s, cannot mark returned", booking.Status)
	}

	metrics.IncTransition(string(entity.BookingStatusReturned))

	booking.Status = entity.BookingStatusReturned
	booking.ReturnedAt = &now

	s.log.Info("Booking returned",
		zap.String("booking_id", booking.ID.String()),
		zap.String("equipment_name", booking.EquipmentName),
	)

	return &response.ReturnBookingResponse{
		Booking: response.BookingToResponse(booking),
	}, nil
}
