package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/usecase"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EquipmentHandler struct {
	service usecase.EquipmentService
	log     *zap.Logger
}

func NewEquipmentHandler(service usecase.EquipmentService, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "equipment")),
	}
}

// GetEquipment handles GET /api/equipment (public)
func (h *EquipmentHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	equipment, err := h.service.GetEquipment(r.Context(), search)
	if err != nil {
		handleServiceError(w, h.log, err, "get equipment")
		return
	}

	utils.ResponseSuccess(w, "success", equipment)
}

// GetEquipmentByID handles GET /api/equipment/{id} (public)
func (h *EquipmentHandler) GetEquipmentByID(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")
	if equipmentID == "" {
		utils.ResponseBadRequest(w, "Equipment ID is required", nil)
		return
	}

	equipment, err := h.service.GetEquipmentByID(r.Context(), equipmentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get equipment by ID")
		return
	}

	utils.ResponseSuccess(w, "success", equipment)
}

// ==================== ADMIN METHODS ====================

// CreateEquipment handles POST /api/admin/equipment (staff only)
func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	equipment, err := h.service.CreateEquipment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create equipment")
		return
	}

	utils.ResponseCreated(w, "success", equipment)
}

// UpdateEquipmentStatus handles PUT /api/admin/equipment/{id}/status (staff only)
func (h *EquipmentHandler) UpdateEquipmentStatus(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")
	if equipmentID == "" {
		utils.ResponseBadRequest(w, "Equipment ID is required", nil)
		return
	}

	var req request.UpdateEquipmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateEquipmentStatus(r.Context(), equipmentID, &req); err != nil {
		handleServiceError(w, h.log, err, "update equipment status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
