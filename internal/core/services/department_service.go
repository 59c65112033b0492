package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
)

var (
	errDepartmentNameRequired = apperrors.NewAppError(apperrors.ErrValidation, "Le nom du département est requis")
	errDepartmentExists       = apperrors.NewAppError(apperrors.ErrDuplicate, "Ce département existe déjà")
	errDepartmentNotFound     = apperrors.NewAppError(apperrors.ErrNotFound, "Département non trouvé")
)

// departmentService implements DepartmentSvcFacade. Employees reference
// departments by name, so it needs both repositories.
type departmentService struct {
	BaseService
	departmentRepo portsrepo.DepartmentRepositoryFacade
	employeeRepo   portsrepo.EmployeeReader
}

// NewDepartmentService creates a new DepartmentService with the given dependencies.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.DepartmentSvcFacade {
	return &departmentService{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.DepartmentRequest) (*domain.Department, error) {
	if strings.TrimSpace(req.Nom) == "" {
		return nil, errDepartmentNameRequired
	}

	existing, err := s.departmentRepo.FindDepartmentByName(ctx, req.Nom)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check department name", slog.String("nom", req.Nom))
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}
	if existing != nil {
		return nil, errDepartmentExists
	}

	department := &domain.Department{Nom: req.Nom}
	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, errDepartmentExists
		}
		s.LogError(ctx, err, "Failed to save department", slog.String("nom", req.Nom))
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	s.LogInfo(ctx, "Department created", slog.String("department_id", department.DepartmentID))
	return department, nil
}

// ListDepartments counts employees per department at read time.
func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments")
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	for i := range departments {
		count, err := s.employeeRepo.CountEmployeesByDepartement(ctx, departments[i].Nom)
		if err != nil {
			s.LogError(ctx, err, "Failed to count department employees", slog.String("nom", departments[i].Nom))
			return nil, fmt.Errorf("failed to count employees: %w", err)
		}
		departments[i].EmployeeCount = count
	}

	if departments == nil {
		return []domain.Department{}, nil
	}
	return departments, nil
}

func (s *departmentService) GetDepartmentDetail(ctx context.Context, departmentID string) (*domain.DepartmentDetail, error) {
	department, err := s.findDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.FindEmployeesByDepartement(ctx, department.Nom)
	if err != nil {
		s.LogError(ctx, err, "Failed to list department employees", slog.String("department_id", departmentID))
		return nil, fmt.Errorf("failed to list department employees: %w", err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	department.EmployeeCount = int64(len(employees))

	return &domain.DepartmentDetail{Department: *department, Employees: employees}, nil
}

// RenameDepartment renames the department and moves its employees to the new name.
func (s *departmentService) RenameDepartment(ctx context.Context, departmentID string, req dto.DepartmentRequest) (*domain.Department, error) {
	if strings.TrimSpace(req.Nom) == "" {
		return nil, errDepartmentNameRequired
	}

	department, err := s.findDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if department.Nom == req.Nom {
		return s.withEmployeeCount(ctx, department)
	}

	other, err := s.departmentRepo.FindDepartmentByName(ctx, req.Nom)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check department name", slog.String("nom", req.Nom))
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}
	if other != nil && other.DepartmentID != department.DepartmentID {
		return nil, errDepartmentExists
	}

	oldNom := department.Nom
	if err := s.departmentRepo.RenameDepartment(ctx, departmentID, oldNom, req.Nom); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, errDepartmentNotFound
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, errDepartmentExists
		}
		s.LogError(ctx, err, "Failed to rename department", slog.String("department_id", departmentID))
		return nil, fmt.Errorf("failed to rename department: %w", err)
	}

	s.LogInfo(ctx, "Department renamed", slog.String("department_id", departmentID), slog.String("from", oldNom), slog.String("to", req.Nom))
	department.Nom = req.Nom
	return s.withEmployeeCount(ctx, department)
}

// DeleteDepartment refuses to remove a department employees still reference.
func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	department, err := s.findDepartment(ctx, departmentID)
	if err != nil {
		return err
	}

	count, err := s.employeeRepo.CountEmployeesByDepartement(ctx, department.Nom)
	if err != nil {
		s.LogError(ctx, err, "Failed to count department employees", slog.String("department_id", departmentID))
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		s.LogWarn(ctx, "Department still referenced", slog.String("department_id", departmentID), slog.Int64("employees", count))
		return apperrors.ErrDepartmentInUse
	}

	if err := s.departmentRepo.DeleteDepartment(ctx, departmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errDepartmentNotFound
		}
		s.LogError(ctx, err, "Failed to delete department", slog.String("department_id", departmentID))
		return fmt.Errorf("failed to delete department: %w", err)
	}

	s.LogInfo(ctx, "Department deleted", slog.String("department_id", departmentID))
	return nil
}

func (s *departmentService) findDepartment(ctx context.Context, departmentID string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errDepartmentNotFound
		}
		s.LogError(ctx, err, "Failed to get department", slog.String("department_id", departmentID))
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return department, nil
}

func (s *departmentService) withEmployeeCount(ctx context.Context, department *domain.Department) (*domain.Department, error) {
	count, err := s.employeeRepo.CountEmployeesByDepartement(ctx, department.Nom)
	if err != nil {
		s.LogError(ctx, err, "Failed to count department employees", slog.String("department_id", department.DepartmentID))
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	department.EmployeeCount = count
	return department, nil
}
