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

const appUserColumns = `id, name, email, role, is_active, created_at`

type PgxAppUserRepository struct {
	*BaseRepository
}

func newPgxAppUserRepository(base *BaseRepository) portsrepo.AppUserRepositoryFacade {
	return &PgxAppUserRepository{BaseRepository: base}
}

// Ensure PgxAppUserRepository implements portsrepo.AppUserRepositoryFacade
var _ portsrepo.AppUserRepositoryFacade = (*PgxAppUserRepository)(nil)

func scanAppUser(row pgx.CollectableRow) (domain.AppUser, error) {
	var u domain.AppUser
	var id uuid.UUID
	err := row.Scan(&id, &u.Name, &u.Email, &u.Role, &u.IsActive, &u.CreatedAt)
	u.UserID = id.String()
	return u, err
}

func (r *PgxAppUserRepository) FindAppUserByID(ctx context.Context, userID string) (*domain.AppUser, error) {
	id, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+appUserColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, mapError(err, "find user")
	}
	user, err := pgx.CollectExactlyOneRow(rows, scanAppUser)
	if err != nil {
		return nil, mapError(err, "find user")
	}
	return &user, nil
}

func (r *PgxAppUserRepository) ListAppUsers(ctx context.Context) ([]domain.AppUser, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+appUserColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(err, "list users")
	}
	users, err := pgx.CollectRows(rows, scanAppUser)
	if err != nil {
		return nil, mapError(err, "scan users")
	}
	return users, nil
}

func (r *PgxAppUserRepository) SaveAppUser(ctx context.Context, user *domain.AppUser) error {
	id := uuid.New()
	query := `INSERT INTO users (` + appUserColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.Pool.Exec(ctx, query, id, user.Name, user.Email, user.Role, user.IsActive, user.CreatedAt)
	if err != nil {
		return mapError(err, "insert user")
	}
	user.UserID = id.String()
	return nil
}

func (r *PgxAppUserRepository) UpdateAppUser(ctx context.Context, userID string, patch domain.AppUserPatch) error {
	id, err := parseID(userID)
	if err != nil {
		return err
	}
	query := `
		UPDATE users SET
			name  = COALESCE($2, name),
			email = COALESCE($3, email),
			role  = COALESCE($4, role)
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, id, patch.Name, patch.Email, patch.Role)
	if err != nil {
		return mapError(err, "update user")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAppUserRepository) DeleteAppUser(ctx context.Context, userID string) error {
	id, err := parseID(userID)
	if err != nil {
		return err
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete user")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
