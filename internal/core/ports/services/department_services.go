package services

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/dto"
)

// DepartmentReaderSvc defines read operations for department data
type DepartmentReaderSvc interface {
	// ListDepartments returns every department with a live employee count.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// GetDepartmentDetail returns a department with its employees.
	GetDepartmentDetail(ctx context.Context, departmentID string) (*domain.DepartmentDetail, error)
}

// DepartmentWriterSvc defines write operations for department data
type DepartmentWriterSvc interface {
	CreateDepartment(ctx context.Context, req dto.DepartmentRequest) (*domain.Department, error)

	// RenameDepartment renames and cascades the new name to referencing employees.
	RenameDepartment(ctx context.Context, departmentID string, req dto.DepartmentRequest) (*domain.Department, error)

	// DeleteDepartment removes a department that no employee references.
	DeleteDepartment(ctx context.Context, departmentID string) error
}

// DepartmentSvcFacade combines all department-related service interfaces
type DepartmentSvcFacade interface {
	DepartmentReaderSvc
	DepartmentWriterSvc
}
