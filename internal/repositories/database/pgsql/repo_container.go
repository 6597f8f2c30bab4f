package pgsql

import (
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	billRepo := newPgxBillRepository(dbPool)
	weeklyRecordRepo := newPgxWeeklyRecordRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	contractorRepo := newPgxContractorRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BillRepo:         billRepo,
		WeeklyRecordRepo: weeklyRecordRepo,
		PaymentRepo:      paymentRepo,
		ProjectRepo:      projectRepo,
		ContractorRepo:   contractorRepo,
		UserRepo:         userRepo,
	}
}
