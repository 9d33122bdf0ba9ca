package response

import (
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
)

type EquipmentResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Category  string                 `json:"category"`
	Price     float64                `json:"price"`
	Status    entity.EquipmentStatus `json:"status"`
	ImageURL  *string                `json:"image_url,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func EquipmentToResponse(equipment *entity.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:        equipment.ID.String(),
		Name:      equipment.Name,
		Category:  equipment.Category,
		Price:     equipment.Price,
		Status:    equipment.Status,
		ImageURL:  equipment.ImageURL,
		CreatedAt: equipment.CreatedAt,
	}
}
