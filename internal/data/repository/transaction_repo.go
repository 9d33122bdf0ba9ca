package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PaidSale is a paid transaction joined with its booking's equipment name,
// used by the revenue reports.
type PaidSale struct {
	Amount        float64
	PaidAt        time.Time
	EquipmentName string
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Transaction, error)
	FindAll(ctx context.Context, status entity.TransactionStatus, limit, offset int) ([]*entity.Transaction, error)
	Count(ctx context.Context, status entity.TransactionStatus) (int64, error)

	// Business queries
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error)
	CancelUnpaidByBooking(ctx context.Context, bookingID uuid.UUID) error
	SumAmountByStatus(ctx context.Context, status entity.TransactionStatus) (float64, error)
	FindPaidBetween(ctx context.Context, from, to time.Time) ([]*entity.Transaction, error)
	FindPaidSales(ctx context.Context) ([]PaidSale, error)
}

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

const transactionColumns = `id, booking_id, user_id, amount, status, payment_method, proof_url, paid_at, created_at`

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, booking_id, user_id, amount, status, payment_method, proof_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		txn.ID,
		txn.BookingID,
		txn.UserID,
		txn.Amount,
		txn.Status,
		txn.PaymentMethod,
		txn.ProofURL,
		txn.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create transaction",
			zap.Error(err),
			zap.String("booking_id", txn.BookingID.String()),
		)
		return fmt.Errorf("create transaction for booking %s: %w", txn.BookingID.String(), err)
	}

	return nil
}

func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	txn, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("Failed to find transaction by ID",
			zap.Error(err),
			zap.String("transaction_id", id.String()),
		)
		return nil, fmt.Errorf("find transaction by ID %s: %w", id.String(), err)
	}

	return txn, nil
}

func (r *transactionRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE booking_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	txn, err := scanTransaction(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("Failed to find transaction by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find transaction by booking ID %s: %w", bookingID.String(), err)
	}

	return txn, nil
}

func (r *transactionRepository) FindAll(ctx context.Context, status entity.TransactionStatus, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find transactions", zap.Error(err))
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *transactionRepository) Count(ctx context.Context, status entity.TransactionStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE ($1 = '' OR status = $1)`, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count transactions", zap.Error(err))
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// MarkPaid transitions an unpaid transaction to paid. Returns false when the
// transaction was not unpaid (already paid or cancelled).
func (r *transactionRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error) {
	query := `UPDATE transactions SET status = 'paid', paid_at = $2 WHERE id = $1 AND status = 'unpaid'`

	result, err := r.db.Exec(ctx, query, id, paidAt)
	if err != nil {
		r.log.Error("Failed to mark transaction paid",
			zap.Error(err),
			zap.String("transaction_id", id.String()),
		)
		return false, fmt.Errorf("mark transaction %s paid: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *transactionRepository) CancelUnpaidByBooking(ctx context.Context, bookingID uuid.UUID) error {
	query := `UPDATE transactions SET status = 'cancelled' WHERE booking_id = $1 AND status = 'unpaid'`

	if _, err := r.db.Exec(ctx, query, bookingID); err != nil {
		r.log.Error("Failed to cancel unpaid transaction",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("cancel unpaid transaction for booking %s: %w", bookingID.String(), err)
	}

	return nil
}

func (r *transactionRepository) SumAmountByStatus(ctx context.Context, status entity.TransactionStatus) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE status = $1`

	var sum float64
	if err := r.db.QueryRow(ctx, query, status).Scan(&sum); err != nil {
		r.log.Error("Failed to sum transactions", zap.Error(err), zap.String("status", string(status)))
		return 0, fmt.Errorf("sum transactions with status %s: %w", string(status), err)
	}
	return sum, nil
}

func (r *transactionRepository) FindPaidBetween(ctx context.Context, from, to time.Time) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = 'paid' AND paid_at >= $1 AND paid_at < $2
		ORDER BY paid_at
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find paid transactions", zap.Error(err))
		return nil, fmt.Errorf("find paid transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *transactionRepository) FindPaidSales(ctx context.Context) ([]PaidSale, error) {
	query := `
		SELECT t.amount, t.paid_at, b.equipment_name
		FROM transactions t
		JOIN bookings b ON b.id = t.booking_id
		WHERE t.status = 'paid' AND t.paid_at IS NOT NULL
		ORDER BY t.paid_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find paid sales", zap.Error(err))
		return nil, fmt.Errorf("find paid sales: %w", err)
	}
	defer rows.Close()

	var sales []PaidSale
	for rows.Next() {
		var sale PaidSale
		if err := rows.Scan(&sale.Amount, &sale.PaidAt, &sale.EquipmentName); err != nil {
			r.log.Error("Failed to scan paid sale row", zap.Error(err))
			return nil, fmt.Errorf("scan paid sale row: %w", err)
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := row.Scan(
		&txn.ID,
		&txn.BookingID,
		&txn.UserID,
		&txn.Amount,
		&txn.Status,
		&txn.PaymentMethod,
		&txn.ProofURL,
		&txn.PaidAt,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func collectTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var txns []*entity.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
