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
	errRoleFieldsRequired = apperrors.NewAppError(apperrors.ErrValidation, "Le nom et la description du rôle sont requis")
	errRoleExists         = apperrors.NewAppError(apperrors.ErrDuplicate, "Ce rôle existe déjà")
	errRoleNotFound       = apperrors.NewAppError(apperrors.ErrNotFound, "Rôle non trouvé")
)

type roleService struct {
	BaseService
	roleRepo portsrepo.RoleRepositoryFacade
}

// NewRoleService creates a new RoleService.
func NewRoleService(roleRepo portsrepo.RoleRepositoryFacade) portssvc.RoleSvcFacade {
	return &roleService{roleRepo: roleRepo}
}

func (s *roleService) CreateRole(ctx context.Context, req dto.RoleRequest) (*domain.Role, error) {
	if err := validateRole(req); err != nil {
		return nil, err
	}

	existing, err := s.roleRepo.FindRoleByName(ctx, req.Nom)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check role name", slog.String("nom", req.Nom))
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}
	if existing != nil {
		return nil, errRoleExists
	}

	role := &domain.Role{Nom: req.Nom, Description: req.Description}
	if err := s.roleRepo.SaveRole(ctx, role); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, errRoleExists
		}
		s.LogError(ctx, err, "Failed to save role", slog.String("nom", req.Nom))
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return role, nil
}

func (s *roleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roles")
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	if roles == nil {
		return []domain.Role{}, nil
	}
	return roles, nil
}

func (s *roleService) GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	role, err := s.roleRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errRoleNotFound
		}
		s.LogError(ctx, err, "Failed to get role", slog.String("role_id", roleID))
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

// UpdateRole overwrites both fields of an existing role.
func (s *roleService) UpdateRole(ctx context.Context, roleID string, req dto.RoleRequest) (*domain.Role, error) {
	if err := validateRole(req); err != nil {
		return nil, err
	}

	role, err := s.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	role.Nom = req.Nom
	role.Description = req.Description

	if err := s.roleRepo.UpdateRole(ctx, *role); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, errRoleNotFound
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, errRoleExists
		}
		s.LogError(ctx, err, "Failed to update role", slog.String("role_id", roleID))
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return role, nil
}

// DeleteRole removes a role. Employees naming it are left untouched.
func (s *roleService) DeleteRole(ctx context.Context, roleID string) error {
	if err := s.roleRepo.DeleteRole(ctx, roleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errRoleNotFound
		}
		s.LogError(ctx, err, "Failed to delete role", slog.String("role_id", roleID))
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func validateRole(req dto.RoleRequest) error {
	if strings.TrimSpace(req.Nom) == "" || strings.TrimSpace(req.Description) == "" {
		return errRoleFieldsRequired
	}
	return nil
}
