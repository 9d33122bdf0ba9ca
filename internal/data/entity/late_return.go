package entity

import "github.com/google/uuid"

// LateReturn is a derived penalty record. At most one per booking.
type LateReturn struct {
	BaseSimple
	BookingID     uuid.UUID `db:"booking_id"`
	UserID        uuid.UUID `db:"user_id"`
	PenaltyAmount float64   `db:"penalty_amount"`
}
