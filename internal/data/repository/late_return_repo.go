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

type LateReturnRepository interface {
	// Create inserts a penalty record. Returns false when the booking already
	// has one (unique booking_id).
	Create(ctx context.Context, penalty *entity.LateReturn) (bool, error)
	FindAll(ctx context.Context) ([]*entity.LateReturn, error)
	PenalizedBookingIDs(ctx context.Context) (map[uuid.UUID]bool, error)
	SumCreatedBetween(ctx context.Context, from, to time.Time) (float64, error)
}

type lateReturnRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLateReturnRepository(db database.PgxIface, log *zap.Logger) LateReturnRepository {
	return &lateReturnRepository{
		db:  db,
		log: log.With(zap.String("repository", "late_return")),
	}
}

func (r *lateReturnRepository) Create(ctx context.Context, penalty *entity.LateReturn) (bool, error) {
	query := `
		INSERT INTO late_returns (id, booking_id, user_id, penalty_amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (booking_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		penalty.ID,
		penalty.BookingID,
		penalty.UserID,
		penalty.PenaltyAmount,
		penalty.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create late return penalty",
			zap.Error(err),
			zap.String("booking_id", penalty.BookingID.String()),
		)
		return false, fmt.Errorf("create penalty for booking %s: %w", penalty.BookingID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *lateReturnRepository) FindAll(ctx context.Context) ([]*entity.LateReturn, error) {
	query := `
		SELECT id, booking_id, user_id, penalty_amount, created_at
		FROM late_returns
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find late returns", zap.Error(err))
		return nil, fmt.Errorf("find late returns: %w", err)
	}
	defer rows.Close()

	var penalties []*entity.LateReturn
	for rows.Next() {
		var penalty entity.LateReturn
		err := rows.Scan(
			&penalty.ID,
			&penalty.BookingID,
			&penalty.UserID,
			&penalty.PenaltyAmount,
			&penalty.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan late return row", zap.Error(err))
			return nil, fmt.Errorf("scan late return row: %w", err)
		}
		penalties = append(penalties, &penalty)
	}

	return penalties, rows.Err()
}

func (r *lateReturnRepository) PenalizedBookingIDs(ctx context.Context) (map[uuid.UUID]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT booking_id FROM late_returns`)
	if err != nil {
		r.log.Error("Failed to load penalized booking IDs", zap.Error(err))
		return nil, fmt.Errorf("load penalized booking IDs: %w", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan penalized booking ID: %w", err)
		}
		ids[id] = true
	}

	return ids, rows.Err()
}

func (r *lateReturnRepository) SumCreatedBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(penalty_amount), 0) FROM late_returns WHERE created_at >= $1 AND created_at < $2`

	var sum float64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&sum); err != nil {
		r.log.Error("Failed to sum late return penalties", zap.Error(err))
		return 0, fmt.Errorf("sum late return penalties: %w", err)
	}
	return sum, nil
}
