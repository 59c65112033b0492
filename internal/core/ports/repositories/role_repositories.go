package repositories

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
)

// RoleReader defines read operations for role data
type RoleReader interface {
	FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error)
	FindRoleByName(ctx context.Context, nom string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

// RoleWriter defines write operations for role data
type RoleWriter interface {
	// SaveRole inserts a role and sets its RoleID. Returns apperrors.ErrDuplicate when the name is taken.
	SaveRole(ctx context.Context, role *domain.Role) error
	// UpdateRole overwrites nom and description.
	UpdateRole(ctx context.Context, role domain.Role) error
	DeleteRole(ctx context.Context, roleID string) error
}

// RoleRepositoryFacade combines all role-related repository interfaces
type RoleRepositoryFacade interface {
	RoleReader
	RoleWriter
}
