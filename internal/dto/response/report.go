package response

type DashboardSummary struct {
	TotalEquipment   int64   `json:"total_equipment"`
	BookingsToday    int64   `json:"bookings_today"`
	RegisteredUsers  int64   `json:"registered_users"`
	TotalRevenue     float64 `json:"total_revenue"`
	PendingBookings  int64   `json:"pending_bookings"`
	UnpaidCount      int64   `json:"unpaid_count"`
	MonthlyPenalties float64 `json:"monthly_penalties"`
}

type RevenuePoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

type EquipmentRevenue struct {
	EquipmentName string  `json:"equipment_name"`
	Revenue       float64 `json:"revenue"`
}

type RevenueReport struct {
	Period       string             `json:"period"`
	Points       []RevenuePoint     `json:"points"`
	TopEquipment []EquipmentRevenue `json:"top_equipment"`
	Total        float64            `json:"total"`
}
