package repository

import (
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Equipment   EquipmentRepository
	Booking     BookingRepository
	Transaction TransactionRepository
	LateReturn  LateReturnRepository
	Workflow    WorkflowRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Equipment:   NewEquipmentRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Transaction: NewTransactionRepository(db, log),
		LateReturn:  NewLateReturnRepository(db, log),
		Workflow:    NewWorkflowRepository(db, log),
	}
}
