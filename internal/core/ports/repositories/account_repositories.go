package repositories

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
)

// CredentialReader defines lookups on authentication accounts
type CredentialReader interface {
	// FindAccountByUsername retrieves an account by its unique username.
	FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error)

	// FindAccountByID retrieves an account by ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// CredentialWriter defines write operations on authentication accounts
type CredentialWriter interface {
	// SaveAccount inserts a new account and sets its AccountID.
	// Returns apperrors.ErrDuplicate when the username is taken.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// SetActive toggles the is_active flag of the account.
	SetActive(ctx context.Context, username string, active bool) error

	// SetVerified marks the account as verified.
	SetVerified(ctx context.Context, username string) error
}

// CredentialRepositoryFacade combines all credential store interfaces
type CredentialRepositoryFacade interface {
	CredentialReader
	CredentialWriter
}
