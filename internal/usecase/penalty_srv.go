package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/response"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/metrics"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"go.uber.org/zap"
)

// PenaltyService derives late return penalty records from returned bookings.
// The scan can run any number of times: a booking is penalized at most once,
// enforced both by the in-scan dedup set and the unique booking_id constraint.
type PenaltyService interface {
	ScanLateReturns(ctx context.Context) (*response.PenaltyScanResponse, error)
	ListPenalties(ctx context.Context) ([]response.LateReturnResponse, error)
}

type penaltyService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	nowFn  func() time.Time
}

func NewPenaltyService(repo *repository.Repository, config *utils.Config, log *zap.Logger) PenaltyService {
	return &penaltyService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "penalty")),
		nowFn:  time.Now,
	}
}

func (s *penaltyService) ScanLateReturns(ctx context.Context) (*response.PenaltyScanResponse, error) {
	bookings, err := s.repo.Booking.FindByStatuses(ctx,
		entity.BookingStatusApproved, entity.BookingStatusReturned)
	if err != nil {
		s.log.Error("Failed to load bookings for scan", zap.Error(err))
		return nil, fmt.Errorf("load bookings for scan: %w", err)
	}

	penalized, err := s.repo.LateReturn.PenalizedBookingIDs(ctx)
	if err != nil {
		s.log.Error("Failed to load penalized booking IDs", zap.Error(err))
		return nil, fmt.Errorf("load penalized booking IDs: %w", err)
	}

	result := &response.PenaltyScanResponse{Scanned: len(bookings)}

	for _, booking := range bookings {
		if booking.ReturnedAt == nil {
			continue
		}

		// Returning exactly on the end date is on time.
		if !booking.ReturnedAt.After(booking.EndDate) {
			continue
		}

		if penalized[booking.ID] {
			continue
		}

		penalty := &entity.LateReturn{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: s.nowFn(),
			},
			BookingID:     booking.ID,
			UserID:        booking.UserID,
			PenaltyAmount: s.config.Workflow.PenaltyAmount,
		}

		created, err := s.repo.LateReturn.Create(ctx, penalty)
		if err != nil {
			s.log.Error("Failed to create penalty",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()))
			return nil, fmt.Errorf("create penalty for booking %s: %w", booking.ID.String(), err)
		}

		if !created {
			// A concurrent scan got there first.
			continue
		}

		result.Penalized++
		result.Penalties = append(result.Penalties, response.LateReturnToResponse(penalty))

		s.log.Info("Late return penalized",
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
			zap.Float64("penalty_amount", penalty.PenaltyAmount),
		)
	}

	if result.Penalized > 0 {
		metrics.AddPenalties(result.Penalized)
	}

	monthStart := now.New(s.nowFn()).BeginningOfMonth()
	result.MonthTotal, err = s.repo.LateReturn.SumCreatedBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		s.log.Error("Failed to sum monthly penalties", zap.Error(err))
		return nil, fmt.Errorf("sum monthly penalties: %w", err)
	}

	s.log.Info("Late return scan finished",
		zap.Int("scanned", result.Scanned),
		zap.Int("penalized", result.Penalized),
		zap.Float64("month_total", result.MonthTotal),
	)

	return result, nil
}

func (s *penaltyService) ListPenalties(ctx context.Context) ([]response.LateReturnResponse, error) {
	penalties, err := s.repo.LateReturn.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list penalties", zap.Error(err))
		return nil, fmt.Errorf("list penalties: %w", err)
	}

	responses := make([]response.LateReturnResponse, len(penalties))
	for i, penalty := range penalties {
		responses[i] = response.LateReturnToResponse(penalty)
	}

	return responses, nil
}
