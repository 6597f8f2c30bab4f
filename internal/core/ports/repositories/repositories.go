package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	BillRepo         BillRepositoryFacade
	WeeklyRecordRepo WeeklyRecordRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	ProjectRepo      ProjectRepositoryFacade
	ContractorRepo   ContractorRepositoryFacade
	UserRepo         UserRepositoryFacade
}
