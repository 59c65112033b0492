package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEmployeesResponse), args.Error(1)
}
func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return m.Called(ctx, employeeID).Error(0)
}
func (m *MockEmployeeService) ImportEmployees(ctx context.Context, r io.Reader) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock DepartmentService ---
type MockDepartmentService struct {
	mock.Mock
}

func (m *MockDepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}
func (m *MockDepartmentService) GetDepartmentDetail(ctx context.Context, departmentID string) (*domain.DepartmentDetail, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartmentDetail), args.Error(1)
}
func (m *MockDepartmentService) CreateDepartment(ctx context.Context, req dto.DepartmentRequest) (*domain.Department, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}
func (m *MockDepartmentService) RenameDepartment(ctx context.Context, departmentID string, req dto.DepartmentRequest) (*domain.Department, error) {
	args := m.Called(ctx, departmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}
func (m *MockDepartmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	return m.Called(ctx, departmentID).Error(0)
}

var _ portssvc.DepartmentSvcFacade = (*MockDepartmentService)(nil)

// --- Mock RoleService ---
type MockRoleService struct {
	mock.Mock
}

func (m *MockRoleService) CreateRole(ctx context.Context, req dto.RoleRequest) (*domain.Role, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}
func (m *MockRoleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}
func (m *MockRoleService) GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}
func (m *MockRoleService) UpdateRole(ctx context.Context, roleID string, req dto.RoleRequest) (*domain.Role, error) {
	args := m.Called(ctx, roleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}
func (m *MockRoleService) DeleteRole(ctx context.Context, roleID string) error {
	return m.Called(ctx, roleID).Error(0)
}

var _ portssvc.RoleSvcFacade = (*MockRoleService)(nil)

// --- Mock AppUserService ---
type MockAppUserService struct {
	mock.Mock
}

func (m *MockAppUserService) GetAppUserByID(ctx context.Context, userID string) (*domain.AppUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}
func (m *MockAppUserService) ListAppUsers(ctx context.Context) ([]domain.AppUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppUser), args.Error(1)
}
func (m *MockAppUserService) CreateAppUser(ctx context.Context, req dto.CreateUserRequest) (*domain.AppUser, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}
func (m *MockAppUserService) UpdateAppUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.AppUser, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}
func (m *MockAppUserService) DeleteAppUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ portssvc.AppUserSvcFacade = (*MockAppUserService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Account), args.Error(2)
}
func (m *MockAuthService) CurrentUser(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAuthService) SetAccountActive(ctx context.Context, username string, active bool) error {
	return m.Called(ctx, username, active).Error(0)
}
func (m *MockAuthService) MarkAccountVerified(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
