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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, status entity.BookingStatus) (int64, error)

	// Business queries
	HasActiveBooking(ctx context.Context, userID, equipmentID uuid.UUID) (bool, error)
	FindByStatuses(ctx context.Context, statuses ...entity.BookingStatus) ([]*entity.Booking, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, to entity.BookingStatus, from ...entity.BookingStatus) (bool, error)
	MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error)
	CountApprovedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, equipment_id, equipment_name, start_date, end_date,
	location, notes, status, total_price, payment_method, approved_at, returned_at,
	created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, equipment_id, equipment_name, start_date, end_date,
		                      location, notes, status, total_price, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.EquipmentID,
		booking.EquipmentName,
		booking.StartDate,
		booking.EndDate,
		booking.Location,
		booking.Notes,
		booking.Status,
		booking.TotalPrice,
		booking.PaymentMethod,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("equipment_name", booking.EquipmentName),
		)
		return fmt.Errorf("create booking for %s: %w", booking.EquipmentName, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}
	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) Count(ctx context.Context, status entity.BookingStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR status = $1)`, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) HasActiveBooking(ctx context.Context, userID, equipmentID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND equipment_id = $2 AND status IN ('pending', 'approved')
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, equipmentID).Scan(&exists); err != nil {
		r.log.Error("Failed to check active booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("equipment_id", equipmentID.String()),
		)
		return false, fmt.Errorf("check active booking: %w", err)
	}

	return exists, nil
}

func (r *bookingRepository) FindByStatuses(ctx context.Context, statuses ...entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = ANY($1)
		ORDER BY created_at
	`

	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	rows, err := r.db.Query(ctx, query, values)
	if err != nil {
		r.log.Error("Failed to find bookings by statuses", zap.Error(err))
		return nil, fmt.Errorf("find bookings by statuses: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// TransitionStatus moves a booking to the target status only when its current
// status is one of the allowed source states. Returns false when no row matched.
func (r *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, to entity.BookingStatus, from ...entity.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1 AND status = ANY($3)`

	values := make([]string, len(from))
	for i, s := range from {
		values[i] = string(s)
	}

	result, err := r.db.Exec(ctx, query, id, to, values)
	if err != nil {
		r.log.Error("Failed to transition booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(to)),
		)
		return false, fmt.Errorf("transition booking %s to %s: %w", id.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET status = 'returned', returned_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'approved'
	`

	result, err := r.db.Exec(ctx, query, id, returnedAt)
	if err != nil {
		r.log.Error("Failed to mark booking returned",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("mark booking %s returned: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) CountApprovedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE status = 'approved' AND approved_at >= $1 AND approved_at < $2`

	var count int64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		r.log.Error("Failed to count approved bookings", zap.Error(err))
		return 0, fmt.Errorf("count approved bookings: %w", err)
	}
	return count, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.EquipmentID,
		&booking.EquipmentName,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Location,
		&booking.Notes,
		&booking.Status,
		&booking.TotalPrice,
		&booking.PaymentMethod,
		&booking.ApprovedAt,
		&booking.ReturnedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
