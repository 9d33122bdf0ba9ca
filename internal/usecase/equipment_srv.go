package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/response"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EquipmentService interface {
	GetEquipment(ctx context.Context, search string) ([]response.EquipmentResponse, error)
	GetEquipmentByID(ctx context.Context, equipmentID string) (*response.EquipmentResponse, error)

	// Admin endpoints
	CreateEquipment(ctx context.Context, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error)
	UpdateEquipmentStatus(ctx context.Context, equipmentID string, req *request.UpdateEquipmentStatusRequest) error
}

type equipmentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEquipmentService(repo *repository.Repository, log *zap.Logger) EquipmentService {
	return &equipmentService{
		repo: repo,
		log:  log.With(zap.String("service", "equipment")),
	}
}

func (s *equipmentService) GetEquipment(ctx context.Context, search string) ([]response.EquipmentResponse, error) {
	items, err := s.repo.Equipment.FindAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to list equipment", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	responses := make([]response.EquipmentResponse, len(items))
	for i, item := range items {
		responses[i] = response.EquipmentToResponse(item)
	}

	return responses, nil
}

func (s *equipmentService) GetEquipmentByID(ctx context.Context, equipmentID string) (*response.EquipmentResponse, error) {
	id, err := uuid.Parse(equipmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid equipment ID format %s: %w", equipmentID, err)
	}

	equipment, err := s.repo.Equipment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find equipment", zap.Error(err), zap.String("equipment_id", equipmentID))
		return nil, fmt.Errorf("get equipment %s: %w", equipmentID, err)
	}
	if equipment == nil {
		return nil, fmt.Errorf("equipment %s not found", equipmentID)
	}

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *equipmentService) CreateEquipment(ctx context.Context, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create equipment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	equipment := &entity.Equipment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Status:   entity.EquipmentStatusAvailable,
		ImageURL: req.ImageURL,
	}

	if err := s.repo.Equipment.Create(ctx, equipment); err != nil {
		s.log.Error("Failed to create equipment", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	s.log.Info("Equipment created",
		zap.String("equipment_id", equipment.ID.String()),
		zap.String("name", equipment.Name),
		zap.Float64("price", equipment.Price))

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *equipmentService) UpdateEquipmentStatus(ctx context.Context, equipmentID string, req *request.UpdateEquipmentStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update equipment status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(equipmentID)
	if err != nil {
		return fmt.Errorf("invalid equipment ID format %s: %w", equipmentID, err)
	}

	equipment, err := s.repo.Equipment.FindByID(ctx, id)
	if err != nil || equipment == nil {
		return fmt.Errorf("equipment %s not found", equipmentID)
	}

	if err := s.repo.Equipment.UpdateStatus(ctx, id, entity.EquipmentStatus(req.Status)); err != nil {
		s.log.Error("Failed to update equipment status",
			zap.Error(err),
			zap.String("equipment_id", equipmentID))
		return fmt.Errorf("update equipment %s status: %w", equipmentID, err)
	}

	s.log.Info("Equipment status updated",
		zap.String("equipment_id", equipmentID),
		zap.String("status", req.Status))

	return nil
}
