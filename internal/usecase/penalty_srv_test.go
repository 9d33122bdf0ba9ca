package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPenaltyFixture(penaltyAmount float64, scanAt time.Time) (*fakeBookingRepo, *fakeLateReturnRepo, PenaltyService) {
	bookings := newFakeBookingRepo()
	lateReturns := newFakeLateReturnRepo()

	repo := &repository.Repository{
		Booking:    bookings,
		LateReturn: lateReturns,
	}

	config := &utils.Config{
		Workflow: utils.WorkflowConfig{PenaltyAmount: penaltyAmount},
	}

	svc := NewPenaltyService(repo, config, zap.NewNop()).(*penaltyService)
	svc.nowFn = func() time.Time { return scanAt }

	return bookings, lateReturns, svc
}

func seedReturnedBooking(bookings *fakeBookingRepo, endDate, returnedAt time.Time) *entity.Booking {
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: endDate.AddDate(0, 0, -5),
			UpdatedAt: returnedAt,
		},
		UserID:        uuid.New(),
		EquipmentID:   uuid.New(),
		EquipmentName: "Rice Thresher",
		StartDate:     endDate.AddDate(0, 0, -3),
		EndDate:       endDate,
		Status:        entity.BookingStatusReturned,
		ReturnedAt:    &returnedAt,
	}
	bookings.bookings[booking.ID] = booking
	return booking
}

func TestScanLateReturns(t *testing.T) {
	ctx := context.Background()
	scanAt := time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)

	t.Run("PenalizesLateReturnOnce", func(t *testing.T) {
		bookings, _, svc := newPenaltyFixture(100, scanAt)

		endDate := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
		late := seedReturnedBooking(bookings, endDate, endDate.AddDate(0, 0, 2))
		seedReturnedBooking(bookings, endDate, endDate) // exactly on the end date, on time

		result, err := svc.ScanLateReturns(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Scanned)
		assert.Equal(t, 1, result.Penalized)
		require.Len(t, result.Penalties, 1)
		assert.Equal(t, late.ID.String(), result.Penalties[0].BookingID)
		assert.Equal(t, 100.0, result.Penalties[0].PenaltyAmount)

		// The scan reports the month's running penalty total.
		assert.Equal(t, 100.0, result.MonthTotal)
	})

	t.Run("SecondScanCreatesNothing", func(t *testing.T) {
		bookings, _, svc := newPenaltyFixture(100, scanAt)

		endDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		seedReturnedBooking(bookings, endDate, endDate.AddDate(0, 0, 1))

		first, err := svc.ScanLateReturns(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Penalized)

		second, err := svc.ScanLateReturns(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, second.Scanned)
		assert.Equal(t, 0, second.Penalized)

		// The total still reflects the penalty from the first run.
		assert.Equal(t, 100.0, second.MonthTotal)
	})

	t.Run("ScansOutstandingApprovedBookings", func(t *testing.T) {
		bookings, _, svc := newPenaltyFixture(100, scanAt)

		endDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		seedReturnedBooking(bookings, endDate, endDate.AddDate(0, 0, 2))

		outstanding := seedReturnedBooking(bookings, endDate, endDate)
		outstanding.Status = entity.BookingStatusApproved
		outstanding.ReturnedAt = nil

		result, err := svc.ScanLateReturns(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Scanned)
		assert.Equal(t, 1, result.Penalized)
	})

	t.Run("UsesConfiguredPenaltyAmount", func(t *testing.T) {
		bookings, _, svc := newPenaltyFixture(250, scanAt)

		endDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		seedReturnedBooking(bookings, endDate, endDate.AddDate(0, 0, 3))

		result, err := svc.ScanLateReturns(ctx)
		require.NoError(t, err)
		require.Len(t, result.Penalties, 1)
		assert.Equal(t, 250.0, result.Penalties[0].PenaltyAmount)
	})

	t.Run("IgnoresBookingsWithoutReturnTimestamp", func(t *testing.T) {
		bookings, _, svc := newPenaltyFixture(100, scanAt)

		endDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		booking := seedReturnedBooking(bookings, endDate, endDate.AddDate(0, 0, 2))
		booking.ReturnedAt = nil

		result, err := svc.ScanLateReturns(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Penalized)
	})
}

func TestListPenalties(t *testing.T) {
	ctx := context.Background()
	scanAt := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	bookings, _, svc := newPenaltyFixture(100, scanAt)

	endDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	seedReturnedBooking(bookings, endDate, endDate.AddDate(0, 0, 2))
	seedReturnedBooking(bookings, endDate, endDate.AddDate(0, 0, 4))

	_, err := svc.ScanLateReturns(ctx)
	require.NoError(t, err)

	penalties, err := svc.ListPenalties(ctx)
	require.NoError(t, err)
	assert.Len(t, penalties, 2)
}
