package services_test

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) CountEmployees(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByDepartement(ctx context.Context, nom string) ([]domain.Employee, error) {
	args := m.Called(ctx, nom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) CountEmployeesByDepartement(ctx context.Context, nom string) (int64, error) {
	args := m.Called(ctx, nom)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) error {
	args := m.Called(ctx, employeeID, patch)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// --- Mock DepartmentRepository ---
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartmentByName(ctx context.Context, nom string) (*domain.Department, error) {
	args := m.Called(ctx, nom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department *domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) RenameDepartment(ctx context.Context, departmentID, oldNom, newNom string) error {
	args := m.Called(ctx, departmentID, oldNom, newNom)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	args := m.Called(ctx, departmentID)
	return args.Error(0)
}

// --- Mock RoleRepository ---
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleRepository) FindRoleByName(ctx context.Context, nom string) (*domain.Role, error) {
	args := m.Called(ctx, nom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockRoleRepository) SaveRole(ctx context.Context, role *domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

// --- Mock CredentialRepository ---
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockCredentialRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockCredentialRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockCredentialRepository) SetActive(ctx context.Context, username string, active bool) error {
	args := m.Called(ctx, username, active)
	return args.Error(0)
}

func (m *MockCredentialRepository) SetVerified(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// --- Mock AppUserRepository ---
type MockAppUserRepository struct {
	mock.Mock
}

func (m *MockAppUserRepository) FindAppUserByID(ctx context.Context, userID string) (*domain.AppUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}

func (m *MockAppUserRepository) ListAppUsers(ctx context.Context) ([]domain.AppUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppUser), args.Error(1)
}

func (m *MockAppUserRepository) SaveAppUser(ctx context.Context, user *domain.AppUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAppUserRepository) UpdateAppUser(ctx context.Context, userID string, patch domain.AppUserPatch) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *MockAppUserRepository) DeleteAppUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
