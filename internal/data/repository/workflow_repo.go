package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApproveResult reports what the approve transition actually did.
type ApproveResult struct {
	Approved           bool
	TransactionCreated bool
}

// WorkflowRepository owns the booking transitions that must touch more than
// one table atomically. The approve transition runs as a single database
// transaction: either the booking flips to approved (and at most one unpaid
// payment transaction exists afterwards) or nothing changes.
type WorkflowRepository interface {
	ApproveBooking(ctx context.Context, bookingID uuid.UUID, approvedAt time.Time, txn *entity.Transaction) (ApproveResult, error)
}

type workflowRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWorkflowRepository(db database.PgxIface, log *zap.Logger) WorkflowRepository {
	return &workflowRepository{
		db:  db,
		log: log.With(zap.String("repository", "workflow")),
	}
}

func (r *workflowRepository) ApproveBooking(ctx context.Context, bookingID uuid.UUID, approvedAt time.Time, txn *entity.Transaction) (ApproveResult, error) {
	var result ApproveResult

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("begin approve transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	updateQuery := `
		UPDATE bookings
		SET status = 'approved', approved_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := tx.Exec(ctx, updateQuery, bookingID, approvedAt)
	if err != nil {
		r.log.Error("Failed to approve booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return result, fmt.Errorf("approve booking %s: %w", bookingID.String(), err)
	}

	if tag.RowsAffected() == 0 {
		// Not pending anymore; nothing to do, no side effects.
		return result, nil
	}
	result.Approved = true

	// The partial unique index on (booking_id) WHERE status='unpaid' turns a
	// concurrent duplicate into a silent no-op instead of a second transaction.
	insertQuery := `
		INSERT INTO transactions (id, booking_id, user_id, amount, status, payment_method, proof_url, created_at)
		VALUES ($1, $2, $3, $4, 'unpaid', $5, $6, $7)
		ON CONFLICT (booking_id) WHERE status = 'unpaid' DO NOTHING
	`

	tag, err = tx.Exec(ctx, insertQuery,
		txn.ID,
		bookingID,
		txn.UserID,
		txn.Amount,
		txn.PaymentMethod,
		txn.ProofURL,
		txn.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create transaction on approval",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return ApproveResult{}, fmt.Errorf("create transaction for booking %s: %w", bookingID.String(), err)
	}
	result.TransactionCreated = tag.RowsAffected() > 0

	if err := tx.Commit(ctx); err != nil {
		return ApproveResult{}, fmt.Errorf("commit approve transaction: %w", err)
	}

	return result, nil
}
