package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionStatusUnpaid    TransactionStatus = "unpaid"
	TransactionStatusPaid      TransactionStatus = "paid"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

type Transaction struct {
	BaseSimple
	BookingID     uuid.UUID         `db:"booking_id"`
	UserID        uuid.UUID         `db:"user_id"`
	Amount        float64           `db:"amount"`
	Status        TransactionStatus `db:"status"`
	PaymentMethod string            `db:"payment_method"`
	ProofURL      *string           `db:"proof_url"`
	PaidAt        *time.Time        `db:"paid_at"`
}
