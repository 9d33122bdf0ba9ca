package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusReturned  BookingStatus = "returned"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	EquipmentID   uuid.UUID     `db:"equipment_id"`
	EquipmentName string        `db:"equipment_name"`
	StartDate     time.Time     `db:"start_date"`
	EndDate       time.Time     `db:"end_date"`
	Location      *string       `db:"location"`
	Notes         *string       `db:"notes"`
	Status        BookingStatus `db:"status"`
	TotalPrice    float64       `db:"total_price"`
	PaymentMethod string        `db:"payment_method"`
	ApprovedAt    *time.Time    `db:"approved_at"`
	ReturnedAt    *time.Time    `db:"returned_at"`
}

// RentalDays is the inclusive day count between start and end date.
func (b *Booking) RentalDays() int {
	days := int(b.EndDate.Sub(b.StartDate).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}
