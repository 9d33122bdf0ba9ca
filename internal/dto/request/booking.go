package request

type CreateBookingRequest struct {
	EquipmentID   string  `json:"equipment_id" validate:"required,uuid4"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	PaymentMethod string  `json:"payment_method,omitempty" validate:"omitempty,oneof=gcash cash"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Status string `json:"status" validate:"omitempty,oneof=pending approved declined returned cancelled"`
}

type ListTransactionsRequest struct {
	PaginatedRequest
	Status string `json:"status" validate:"omitempty,oneof=unpaid paid cancelled"`
}
