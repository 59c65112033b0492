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

const accountColumns = `id, username, password_hash, phone, role, is_active, is_verified, verification_code, created_at`

// PgxAccountRepository is the credential store backed by the accounts table.
type PgxAccountRepository struct {
	*BaseRepository
}

func newPgxAccountRepository(base *BaseRepository) portsrepo.CredentialRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: base}
}

var _ portsrepo.CredentialRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.CollectableRow) (domain.Account, error) {
	var a domain.Account
	var id uuid.UUID
	err := row.Scan(&id, &a.Username, &a.PasswordHash, &a.Phone, &a.Role, &a.IsActive, &a.IsVerified, &a.VerificationCode, &a.CreatedAt)
	a.AccountID = id.String()
	return a, err
}

func (r *PgxAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	id, err := parseID(accountID)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	id := uuid.New()
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		id,
		account.Username,
		account.PasswordHash,
		account.Phone,
		account.Role,
		account.IsActive,
		account.IsVerified,
		account.VerificationCode,
		account.CreatedAt,
	)
	if err != nil {
		return mapError(err, "insert account")
	}
	account.AccountID = id.String()
	return nil
}

func (r *PgxAccountRepository) SetActive(ctx context.Context, username string, active bool) error {
	return r.exec(ctx, `UPDATE accounts SET is_active = $2 WHERE username = $1`, username, active)
}

func (r *PgxAccountRepository) SetVerified(ctx context.Context, username string) error {
	return r.exec(ctx, `UPDATE accounts SET is_verified = TRUE WHERE username = $1`, username)
}

func (r *PgxAccountRepository) exec(ctx context.Context, query, username string, args ...any) error {
	cmdTag, err := r.Pool.Exec(ctx, query, append([]any{username}, args...)...)
	if err != nil {
		return mapError(err, "update account")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", username, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) findOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, mapError(err, "find account")
	}
	account, err := pgx.CollectExactlyOneRow(rows, scanAccount)
	if err != nil {
		return nil, mapError(err, "find account")
	}
	return &account, nil
}
