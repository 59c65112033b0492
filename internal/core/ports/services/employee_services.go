package services

import (
	"context"
	"io"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// ListEmployees returns one page of employees matching the search.
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error)

	// GetEmployeeByID retrieves a single employee.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee checks the referenced department then inserts the employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee checks the referenced department then applies a shallow merge.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeImportSvc defines bulk import of employees from text.
type EmployeeImportSvc interface {
	// ImportEmployees reads "nom,prenom,email,departement" lines and returns how many were added.
	ImportEmployees(ctx context.Context, r io.Reader) (int, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeImportSvc
}
