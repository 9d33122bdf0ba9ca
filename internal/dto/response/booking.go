package response

import (
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	EquipmentID   string               `json:"equipment_id"`
	EquipmentName string               `json:"equipment_name"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	RentalDays    int                  `json:"rental_days"`
	Location      *string              `json:"location,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	TotalPrice    float64              `json:"total_price"`
	PaymentMethod string               `json:"payment_method"`
	ApprovedAt    *time.Time           `json:"approved_at,omitempty"`
	ReturnedAt    *time.Time           `json:"returned_at,omitempty"`
	Transaction   *TransactionResponse `json:"transaction,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

type TransactionResponse struct {
	ID            string                   `json:"id"`
	BookingID     string                   `json:"booking_id"`
	UserID        string                   `json:"user_id"`
	Amount        float64                  `json:"amount"`
	Status        entity.TransactionStatus `json:"status"`
	PaymentMethod string                   `json:"payment_method"`
	ProofURL      *string                  `json:"proof_url,omitempty"`
	PaidAt        *time.Time               `json:"paid_at,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

// ApproveBookingResponse reports whether the approval created a transaction
// or skipped because an unpaid one already existed.
type ApproveBookingResponse struct {
	Booking            BookingResponse `json:"booking"`
	TransactionCreated bool            `json:"transaction_created"`
	DuplicateSkipped   bool            `json:"duplicate_skipped"`
}

type LateReturnResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	UserID        string    `json:"user_id"`
	PenaltyAmount float64   `json:"penalty_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReturnBookingResponse flags repeated returns so callers can tell a fresh
// return from a no-op on an already returned booking.
type ReturnBookingResponse struct {
	Booking         BookingResponse `json:"booking"`
	AlreadyReturned bool            `json:"already_returned"`
}

// PenaltyScanResponse reports one scan run. MonthTotal is the sum of all
// penalties created in the current month, including earlier runs.
type PenaltyScanResponse struct {
	Scanned    int                  `json:"scanned"`
	Penalized  int                  `json:"penalized"`
	MonthTotal float64              `json:"month_total"`
	Penalties  []LateReturnResponse `json:"penalties"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		UserID:        booking.UserID.String(),
		EquipmentID:   booking.EquipmentID.String(),
		EquipmentName: booking.EquipmentName,
		StartDate:     booking.StartDate.Format("2006-01-02"),
		EndDate:       booking.EndDate.Format("2006-01-02"),
		RentalDays:    booking.RentalDays(),
		Location:      booking.Location,
		Notes:         booking.Notes,
		Status:        booking.Status,
		TotalPrice:    booking.TotalPrice,
		PaymentMethod: booking.PaymentMethod,
		ApprovedAt:    booking.ApprovedAt,
		ReturnedAt:    booking.ReturnedAt,
		CreatedAt:     booking.CreatedAt,
	}
}

func TransactionToResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.ID.String(),
		BookingID:     txn.BookingID.String(),
		UserID:        txn.UserID.String(),
		Amount:        txn.Amount,
		Status:        txn.Status,
		PaymentMethod: txn.PaymentMethod,
		ProofURL:      txn.ProofURL,
		PaidAt:        txn.PaidAt,
		CreatedAt:     txn.CreatedAt,
	}
}

func LateReturnToResponse(penalty *entity.LateReturn) LateReturnResponse {
	return LateReturnResponse{
		ID:            penalty.ID.String(),
		BookingID:     penalty.BookingID.String(),
		UserID:        penalty.UserID.String(),
		PenaltyAmount: penalty.PenaltyAmount,
		CreatedAt:     penalty.CreatedAt,
	}
}
