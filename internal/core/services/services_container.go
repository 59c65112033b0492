package services

import (
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Token service first since auth and the access gate depend on it
	container.Token = NewTokenService(cfg)
	container.Access = NewAccessGate(cfg, container.Token)
	container.Auth = NewAuthService(repos.AccountRepo, container.Token)

	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.DepartmentRepo)
	container.Department = NewDepartmentService(repos.DepartmentRepo, repos.EmployeeRepo)
	container.Role = NewRoleService(repos.RoleRepo)
	container.User = NewAppUserService(repos.AppUserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EmployeeSvcFacade   = (*employeeService)(nil)
	_ portssvc.DepartmentSvcFacade = (*departmentService)(nil)
	_ portssvc.RoleSvcFacade       = (*roleService)(nil)
	_ portssvc.AppUserSvcFacade    = (*appUserService)(nil)
	_ portssvc.AuthSvcFacade       = (*authService)(nil)
	_ portssvc.TokenSvcFacade      = (*tokenService)(nil)
	_ portssvc.AccessGateSvc       = (*accessGate)(nil)
)
