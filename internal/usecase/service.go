package usecase

import (
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/cache"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Equipment EquipmentService
	Booking   BookingService
	Workflow  WorkflowService
	Penalty   PenaltyService
	Report    ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, reportCache *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo, log),
		Equipment: NewEquipmentService(repo, log),
		Booking:   NewBookingService(repo, config, log),
		Workflow:  NewWorkflowService(repo, config, log),
		Penalty:   NewPenaltyService(repo, config, log),
		Report:    NewReportService(repo, reportCache, log),
	}
}
