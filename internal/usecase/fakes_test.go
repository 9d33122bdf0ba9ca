package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes for service tests.

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking

	// findErr simulates a storage failure on lookups.
	findErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	clone := *booking
	f.bookings[booking.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *booking
	return &clone, nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			clone := *booking
			out = append(out, &clone)
		}
	}
	sortBookings(out)
	return window(out, limit, offset), nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if status == "" || booking.Status == status {
			clone := *booking
			out = append(out, &clone)
		}
	}
	sortBookings(out)
	return window(out, limit, offset), nil
}

func (f *fakeBookingRepo) Count(_ context.Context, status entity.BookingStatus) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if status == "" || booking.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) HasActiveBooking(_ context.Context, userID, equipmentID uuid.UUID) (bool, error) {
	for _, booking := range f.bookings {
		if booking.UserID == userID && booking.EquipmentID == equipmentID &&
			(booking.Status == entity.BookingStatusPending || booking.Status == entity.BookingStatusApproved) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) FindByStatuses(_ context.Context, statuses ...entity.BookingStatus) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		for _, status := range statuses {
			if booking.Status == status {
				clone := *booking
				out = append(out, &clone)
				break
			}
		}
	}
	sortBookings(out)
	return out, nil
}

func (f *fakeBookingRepo) TransitionStatus(_ context.Context, id uuid.UUID, to entity.BookingStatus, from ...entity.BookingStatus) (bool, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return false, nil
	}
	for _, status := range from {
		if booking.Status == status {
			booking.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) MarkReturned(_ context.Context, id uuid.UUID, returnedAt time.Time) (bool, error) {
	booking, ok := f.bookings[id]
	if !ok || booking.Status != entity.BookingStatusApproved {
		return false, nil
	}
	booking.Status = entity.BookingStatusReturned
	at := returnedAt
	booking.ReturnedAt = &at
	return true, nil
}

func (f *fakeBookingRepo) CountApprovedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.Status != entity.BookingStatusApproved || booking.ApprovedAt == nil {
			continue
		}
		if !booking.ApprovedAt.Before(from) && booking.ApprovedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

type fakeTransactionRepo struct {
	txns map[uuid.UUID]*entity.Transaction

	// sales backs FindPaidSales directly since the join lives in SQL.
	sales []repository.PaidSale
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txns: make(map[uuid.UUID]*entity.Transaction)}
}

func (f *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	clone := *txn
	f.txns[txn.ID] = &clone
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, ok := f.txns[id]
	if !ok {
		return nil, nil
	}
	clone := *txn
	return &clone, nil
}

func (f *fakeTransactionRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Transaction, error) {
	var latest *entity.Transaction
	for _, txn := range f.txns {
		if txn.BookingID != bookingID {
			continue
		}
		if latest == nil || txn.CreatedAt.After(latest.CreatedAt) {
			latest = txn
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (f *fakeTransactionRepo) FindAll(_ context.Context, status entity.TransactionStatus, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range f.txns {
		if status == "" || txn.Status == status {
			clone := *txn
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return window(out, limit, offset), nil
}

func (f *fakeTransactionRepo) Count(_ context.Context, status entity.TransactionStatus) (int64, error) {
	var count int64
	for _, txn := range f.txns {
		if status == "" || txn.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionRepo) MarkPaid(_ context.Context, id uuid.UUID, paidAt time.Time) (bool, error) {
	txn, ok := f.txns[id]
	if !ok || txn.Status != entity.TransactionStatusUnpaid {
		return false, nil
	}
	txn.Status = entity.TransactionStatusPaid
	at := paidAt
	txn.PaidAt = &at
	return true, nil
}

func (f *fakeTransactionRepo) CancelUnpaidByBooking(_ context.Context, bookingID uuid.UUID) error {
	for _, txn := range f.txns {
		if txn.BookingID == bookingID && txn.Status == entity.TransactionStatusUnpaid {
			txn.Status = entity.TransactionStatusCancelled
		}
	}
	return nil
}

func (f *fakeTransactionRepo) SumAmountByStatus(_ context.Context, status entity.TransactionStatus) (float64, error) {
	var sum float64
	for _, txn := range f.txns {
		if txn.Status == status {
			sum += txn.Amount
		}
	}
	return sum, nil
}

func (f *fakeTransactionRepo) FindPaidBetween(_ context.Context, from, to time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range f.txns {
		if txn.Status != entity.TransactionStatusPaid || txn.PaidAt == nil {
			continue
		}
		if !txn.PaidAt.Before(from) && txn.PaidAt.Before(to) {
			clone := *txn
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) FindPaidSales(_ context.Context) ([]repository.PaidSale, error) {
	return f.sales, nil
}

type fakeLateReturnRepo struct {
	penalties map[uuid.UUID]*entity.LateReturn // keyed by booking ID
}

func newFakeLateReturnRepo() *fakeLateReturnRepo {
	return &fakeLateReturnRepo{penalties: make(map[uuid.UUID]*entity.LateReturn)}
}

func (f *fakeLateReturnRepo) Create(_ context.Context, penalty *entity.LateReturn) (bool, error) {
	if _, exists := f.penalties[penalty.BookingID]; exists {
		return false, nil
	}
	clone := *penalty
	f.penalties[penalty.BookingID] = &clone
	return true, nil
}

func (f *fakeLateReturnRepo) FindAll(_ context.Context) ([]*entity.LateReturn, error) {
	var out []*entity.LateReturn
	for _, penalty := range f.penalties {
		clone := *penalty
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeLateReturnRepo) PenalizedBookingIDs(_ context.Context) (map[uuid.UUID]bool, error) {
	ids := make(map[uuid.UUID]bool, len(f.penalties))
	for bookingID := range f.penalties {
		ids[bookingID] = true
	}
	return ids, nil
}

func (f *fakeLateReturnRepo) SumCreatedBetween(_ context.Context, from, to time.Time) (float64, error) {
	var sum float64
	for _, penalty := range f.penalties {
		if !penalty.CreatedAt.Before(from) && penalty.CreatedAt.Before(to) {
			sum += penalty.PenaltyAmount
		}
	}
	return sum, nil
}

// fakeWorkflowRepo emulates the atomic approve against the in-memory stores.
type fakeWorkflowRepo struct {
	bookings *fakeBookingRepo
	txns     *fakeTransactionRepo
}

func (f *fakeWorkflowRepo) ApproveBooking(_ context.Context, bookingID uuid.UUID, approvedAt time.Time, txn *entity.Transaction) (repository.ApproveResult, error) {
	var result repository.ApproveResult

	booking, ok := f.bookings.bookings[bookingID]
	if !ok || booking.Status != entity.BookingStatusPending {
		return result, nil
	}

	booking.Status = entity.BookingStatusApproved
	at := approvedAt
	booking.ApprovedAt = &at
	result.Approved = true

	for _, existing := range f.txns.txns {
		if existing.BookingID == bookingID && existing.Status == entity.TransactionStatusUnpaid {
			return result, nil
		}
	}

	clone := *txn
	f.txns.txns[txn.ID] = &clone
	result.TransactionCreated = true
	return result, nil
}

type fakeEquipmentRepo struct {
	items map[uuid.UUID]*entity.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[uuid.UUID]*entity.Equipment)}
}

func (f *fakeEquipmentRepo) Create(_ context.Context, equipment *entity.Equipment) error {
	clone := *equipment
	f.items[equipment.ID] = &clone
	return nil
}

func (f *fakeEquipmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Equipment, error) {
	equipment, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	clone := *equipment
	return &clone, nil
}

func (f *fakeEquipmentRepo) FindAll(_ context.Context, _ string) ([]*entity.Equipment, error) {
	var out []*entity.Equipment
	for _, equipment := range f.items {
		clone := *equipment
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeEquipmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.EquipmentStatus) error {
	if equipment, ok := f.items[id]; ok {
		equipment.Status = status
	}
	return nil
}

func (f *fakeEquipmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range f.users {
		clone := *user
		out = append(out, &clone)
	}
	return window(out, limit, offset), nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) (bool, error) {
	user, ok := f.users[id]
	if !ok {
		return false, nil
	}
	user.IsActive = active
	return true, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session // keyed by token
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	clone := *session
	f.sessions[session.Token.String()] = &clone
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || !session.Valid(time.Now()) {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if session, ok := f.sessions[token]; ok {
		at := time.Now()
		session.RevokedAt = &at
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	at := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.RevokedAt = &at
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	return nil
}

// ==================== SHARED HELPERS ====================

func sortBookings(bookings []*entity.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
