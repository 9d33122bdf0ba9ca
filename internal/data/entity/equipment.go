package entity

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusUnavailable EquipmentStatus = "unavailable"
)

type Equipment struct {
	Base
	Name     string          `db:"name"`
	Category string          `db:"category"`
	Price    float64         `db:"price"` // per day
	Status   EquipmentStatus `db:"status"`
	ImageURL *string         `db:"image_url"`
}
