package services

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/dto"
)

// RoleSvcFacade defines role lookup table management
type RoleSvcFacade interface {
	CreateRole(ctx context.Context, req dto.RoleRequest) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error)
	UpdateRole(ctx context.Context, roleID string, req dto.RoleRequest) (*domain.Role, error)
	DeleteRole(ctx context.Context, roleID string) error
}
