package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

var errEmployeeNotFound = apperrors.NewAppError(apperrors.ErrNotFound, "Employé non trouvé")

// employeeService implements EmployeeSvcFacade.
type employeeService struct {
	BaseService
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	departmentRepo portsrepo.DepartmentReader
}

// NewEmployeeService creates a new EmployeeService with the given dependencies.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, departmentRepo portsrepo.DepartmentReader) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// ListEmployees returns the requested page along with the total match count.
func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error) {
	page, perPage := params.Page, params.PerPage
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	search := strings.TrimSpace(params.Search)

	total, err := s.employeeRepo.CountEmployees(ctx, search)
	if err != nil {
		s.LogError(ctx, err, "Failed to count employees", slog.String("search", search))
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	// Pages past the addressable range are empty.
	if page-1 > math.MaxInt/perPage {
		return &dto.ListEmployeesResponse{
			Total:    total,
			Page:     page,
			PerPage:  perPage,
			Employes: []dto.EmployeeResponse{},
		}, nil
	}

	employees, err := s.employeeRepo.FindEmployees(ctx, domain.EmployeeFilter{
		Search: search,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("search", search))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return &dto.ListEmployeesResponse{
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		Employes: dto.ToEmployeeResponses(employees),
	}, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errEmployeeNotFound
		}
		s.LogError(ctx, err, "Failed to get employee", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// CreateEmployee inserts an employee once its department, if any, is known.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := s.ensureDepartmentExists(ctx, req.Departement); err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Nom:          req.Nom,
		Prenom:       req.Prenom,
		Email:        req.Email,
		Departement:  req.Departement,
		Role:         req.Role,
		DateEmbauche: req.DateEmbauche,
		Salaire:      req.Salaire,
		AuditFields:  domain.AuditFields{CreatedAt: time.Now().UTC()},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee")
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return employee, nil
}

// UpdateEmployee applies the supplied fields and returns the merged record.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	patch := req.ToPatch()
	if patch.Departement != nil {
		if err := s.ensureDepartmentExists(ctx, *patch.Departement); err != nil {
			return nil, err
		}
	}

	if !patch.IsEmpty() {
		if err := s.employeeRepo.UpdateEmployee(ctx, employeeID, patch); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, errEmployeeNotFound
			}
			s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
			return nil, fmt.Errorf("failed to update employee: %w", err)
		}
	}

	return s.GetEmployeeByID(ctx, employeeID)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errEmployeeNotFound
		}
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

// ensureDepartmentExists accepts an empty name; any other name must match a department exactly.
func (s *employeeService) ensureDepartmentExists(ctx context.Context, nom string) error {
	if nom == "" {
		return nil
	}
	if _, err := s.departmentRepo.FindDepartmentByName(ctx, nom); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewAppError(apperrors.ErrValidation, fmt.Sprintf("Département '%s' non trouvé", nom))
		}
		s.LogError(ctx, err, "Failed to check department", slog.String("departement", nom))
		return fmt.Errorf("failed to check department: %w", err)
	}
	return nil
}
