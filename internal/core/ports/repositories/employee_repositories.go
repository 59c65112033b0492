package repositories

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployees retrieves a window of employees in insertion order.
	FindEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)

	// CountEmployees counts the employees matching search (empty search counts all).
	CountEmployees(ctx context.Context, search string) (int64, error)

	// FindEmployeesByDepartement retrieves all employees whose departement equals nom.
	FindEmployeesByDepartement(ctx context.Context, nom string) ([]domain.Employee, error)

	// CountEmployeesByDepartement counts employees whose departement equals nom.
	CountEmployeesByDepartement(ctx context.Context, nom string) (int64, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee inserts a new employee and sets its EmployeeID.
	SaveEmployee(ctx context.Context, employee *domain.Employee) error

	// UpdateEmployee applies a shallow merge. Returns apperrors.ErrNotFound when absent.
	UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) error

	// DeleteEmployee removes an employee. Returns apperrors.ErrNotFound when absent.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
