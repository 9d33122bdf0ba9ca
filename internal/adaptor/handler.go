package adaptor

import (
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Equipment *EquipmentHandler
	Booking   *BookingHandler
	Workflow  *WorkflowHandler
	Report    *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Equipment: NewEquipmentHandler(service.Equipment, log),
		Booking:   NewBookingHandler(service.Booking, service.Workflow, log),
		Workflow:  NewWorkflowHandler(service.Workflow, service.Penalty, log),
		Report:    NewReportHandler(service.Report, log),
	}
}
