package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PgxRoleRepository struct {
	*BaseRepository
}

func newPgxRoleRepository(base *BaseRepository) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{BaseRepository: base}
}

var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

func scanRole(row pgx.CollectableRow) (domain.Role, error) {
	var role domain.Role
	var id uuid.UUID
	err := row.Scan(&id, &role.Nom, &role.Description)
	role.RoleID = id.String()
	return role, err
}

func (r *PgxRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	id, err := parseID(roleID)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, `SELECT id, nom, description FROM roles WHERE id = $1`, id)
}

func (r *PgxRoleRepository) FindRoleByName(ctx context.Context, nom string) (*domain.Role, error) {
	return r.findOne(ctx, `SELECT id, nom, description FROM roles WHERE nom = $1`, nom)
}

func (r *PgxRoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, nom, description FROM roles ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(err, "list roles")
	}
	roles, err := pgx.CollectRows(rows, scanRole)
	if err != nil {
		return nil, mapError(err, "scan roles")
	}
	return roles, nil
}

func (r *PgxRoleRepository) SaveRole(ctx context.Context, role *domain.Role) error {
	id := uuid.New()
	_, err := r.Pool.Exec(ctx, `INSERT INTO roles (id, nom, description) VALUES ($1, $2, $3)`, id, role.Nom, role.Description)
	if err != nil {
		return mapError(err, "insert role")
	}
	role.RoleID = id.String()
	return nil
}

func (r *PgxRoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	id, err := parseID(role.RoleID)
	if err != nil {
		return err
	}
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE roles SET nom = $2, description = $3 WHERE id = $1`, id, role.Nom, role.Description)
	if err != nil {
		return mapError(err, "update role")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("role %s: %w", role.RoleID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	id, err := parseID(roleID)
	if err != nil {
		return err
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete role")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("role %s: %w", roleID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRoleRepository) findOne(ctx context.Context, query string, arg any) (*domain.Role, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, mapError(err, "find role")
	}
	role, err := pgx.CollectExactlyOneRow(rows, scanRole)
	if err != nil {
		return nil, mapError(err, "find role")
	}
	return &role, nil
}
