package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EmployeeRepo   EmployeeRepositoryFacade
	DepartmentRepo DepartmentRepositoryFacade
	RoleRepo       RoleRepositoryFacade
	AccountRepo    CredentialRepositoryFacade
	AppUserRepo    AppUserRepositoryFacade
	Health         HealthChecker
}
