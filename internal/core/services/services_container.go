package services

import (
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/metrics"
	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/SscSPs/construction_billing_app/internal/utils/identifiers"
	"github.com/SscSPs/construction_billing_app/internal/utils/keylock"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Users first: the user service is the role provider for everything else.
	container.User = NewUserService(repos.UserRepo, cfg.BootstrapAdminID, WithMetrics(m))
	guard := NewDeletionGuard(container.User, cfg.DeletionSecretHash)

	// One allocator and one lock table for the whole process.
	shared := []ServiceOption{
		WithRoleProvider(container.User),
		WithDeletionAuthorizer(guard),
		WithMetrics(m),
		WithIdentifierAllocator(identifiers.NewAllocator(nil)),
		WithKeyLock(keylock.New()),
		WithDebitPolicy(cfg.DebitPolicy),
		WithDeletePolicy(cfg.DeletePolicy),
	}

	// The user service was built before the guard existed.
	if us, ok := container.User.(*userService); ok {
		us.Deletion = guard
	}

	container.Bill = NewBillService(repos.BillRepo, shared...)
	container.WeeklyRecord = NewWeeklyRecordService(repos.WeeklyRecordRepo, shared...)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.BillRepo, shared...)
	container.MasterData = NewMasterDataService(repos.ProjectRepo, repos.ContractorRepo, shared...)
	container.Reporting = NewReportingService(repos.BillRepo, repos.WeeklyRecordRepo, repos.PaymentRepo, shared...)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BillSvcFacade         = (*billService)(nil)
	_ portssvc.WeeklyRecordSvcFacade = (*weeklyRecordService)(nil)
	_ portssvc.PaymentSvcFacade      = (*paymentService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
)
