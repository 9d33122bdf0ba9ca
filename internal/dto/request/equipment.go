package request

type CreateEquipmentRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Category string  `json:"category" validate:"required,min=2,max=50"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateEquipmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available maintenance unavailable"`
}
