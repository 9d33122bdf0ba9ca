package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingFixture() (*fakeBookingRepo, *fakeEquipmentRepo, BookingService) {
	bookings := newFakeBookingRepo()
	equipment := newFakeEquipmentRepo()

	repo := &repository.Repository{
		Booking:     bookings,
		Equipment:   equipment,
		Transaction: newFakeTransactionRepo(),
	}

	config := &utils.Config{
		Workflow: utils.WorkflowConfig{DefaultPaymentMethod: "gcash"},
	}

	return bookings, equipment, NewBookingService(repo, config, zap.NewNop())
}

func seedEquipment(equipment *fakeEquipmentRepo, price float64, status entity.EquipmentStatus) *entity.Equipment {
	now := time.Now()
	item := &entity.Equipment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     "Water Pump",
		Category: "Irrigation",
		Price:    price,
		Status:   status,
	}
	equipment.items[item.ID] = item
	return item
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("PricesInclusiveDays", func(t *testing.T) {
		_, equipment, svc := newBookingFixture()
		item := seedEquipment(equipment, 50, entity.EquipmentStatusAvailable)
		userID := uuid.New().String()

		// Jan 1 to Jan 3 is three rental days.
		resp, err := svc.CreateBooking(ctx, userID, &request.CreateBookingRequest{
			EquipmentID: item.ID.String(),
			StartDate:   "2025-01-01",
			EndDate:     "2025-01-03",
		})
		require.NoError(t, err)

		assert.Equal(t, 3, resp.RentalDays)
		assert.Equal(t, 150.0, resp.TotalPrice)
		assert.Equal(t, entity.BookingStatusPending, resp.Status)
		assert.Equal(t, "gcash", resp.PaymentMethod)
		assert.Equal(t, item.Name, resp.EquipmentName)
	})

	t.Run("SingleDayRental", func(t *testing.T) {
		_, equipment, svc := newBookingFixture()
		item := seedEquipment(equipment, 80, entity.EquipmentStatusAvailable)

		resp, err := svc.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
			EquipmentID: item.ID.String(),
			StartDate:   "2025-01-05",
			EndDate:     "2025-01-05",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.RentalDays)
		assert.Equal(t, 80.0, resp.TotalPrice)
	})

	t.Run("RejectsDuplicateActiveBooking", func(t *testing.T) {
		_, equipment, svc := newBookingFixture()
		item := seedEquipment(equipment, 50, entity.EquipmentStatusAvailable)
		userID := uuid.New().String()

		_, err := svc.CreateBooking(ctx, userID, &request.CreateBookingRequest{
			EquipmentID: item.ID.String(),
			StartDate:   "2025-01-01",
			EndDate:     "2025-01-03",
		})
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, userID, &request.CreateBookingRequest{
			EquipmentID: item.ID.String(),
			StartDate:   "2025-02-01",
			EndDate:     "2025-02-03",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already have")
	})

	t.Run("AllowsSameEquipmentForDifferentUsers", func(t *testing.T) {
		_, equipment, svc := newBookingFixture()
		item := seedEquipment(equipment, 50, entity.EquipmentStatusAvailable)

		_, err := svc.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
			EquipmentID: item.ID.String(),
			StartDate:   "2025-01-01",
			EndDate:     "2025-01-03",
		})
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
			EquipmentID: item.ID.String(),
			StartDate:   "2025-01-01",
			EndDate:     "2025-01-03",
		})
		require.NoError(t, err)
	})

	t.Run("RejectsUnavailableEquipment", func(t *testing.T) {
		_, equipment, svc := newBookingFixture()
		item := seedEquipment(equipment, 50, entity.EquipmentStatusMaintenance)

		_, err := svc.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
			EquipmentID: item.ID.String(),
			StartDate:   "2025-01-01",
			EndDate:     "2025-01-03",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot book")
	})

	t.Run("RejectsEndBeforeStart", func(t *testing.T) {
		_, equipment, svc := newBookingFixture()
		item := seedEquipment(equipment, 50, entity.EquipmentStatusAvailable)

		_, err := svc.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
			EquipmentID: item.ID.String(),
			StartDate:   "2025-01-05",
			EndDate:     "2025-01-03",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("RejectsUnknownEquipment", func(t *testing.T) {
		_, _, svc := newBookingFixture()

		_, err := svc.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
			EquipmentID: uuid.New().String(),
			StartDate:   "2025-01-01",
			EndDate:     "2025-01-03",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestGetUserBookings(t *testing.T) {
	ctx := context.Background()

	bookings, equipment, svc := newBookingFixture()
	item := seedEquipment(equipment, 50, entity.EquipmentStatusAvailable)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		booking := &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
				UpdatedAt: time.Now(),
			},
			UserID:        userID,
			EquipmentID:   item.ID,
			EquipmentName: item.Name,
			StartDate:     time.Now(),
			EndDate:       time.Now().AddDate(0, 0, 1),
			Status:        entity.BookingStatusPending,
			TotalPrice:    100,
			PaymentMethod: "gcash",
		}
		bookings.bookings[booking.ID] = booking
	}

	resp, err := svc.GetUserBookings(ctx, userID.String(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)

	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}
