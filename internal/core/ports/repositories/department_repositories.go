package repositories

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
)

// DepartmentReader defines read operations for department data
type DepartmentReader interface {
	// FindDepartmentByID retrieves a department by ID. EmployeeCount is left zero.
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// FindDepartmentByName retrieves a department by its exact name.
	FindDepartmentByName(ctx context.Context, nom string) (*domain.Department, error)

	// ListDepartments retrieves all departments in insertion order.
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for department data
type DepartmentWriter interface {
	// SaveDepartment inserts a department and sets its DepartmentID.
	// Returns apperrors.ErrDuplicate when the name is taken.
	SaveDepartment(ctx context.Context, department *domain.Department) error

	// RenameDepartment renames the department and rewrites the departement
	// field of every employee that referenced oldNom.
	RenameDepartment(ctx context.Context, departmentID, oldNom, newNom string) error

	// DeleteDepartment removes a department. Returns apperrors.ErrNotFound when absent.
	DeleteDepartment(ctx context.Context, departmentID string) error
}

// DepartmentRepositoryFacade combines all department-related repository interfaces
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
}
