package repositories

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
)

// AppUserReader defines read operations for application user profiles
type AppUserReader interface {
	// FindAppUserByID retrieves a specific user by their ID.
	FindAppUserByID(ctx context.Context, userID string) (*domain.AppUser, error)

	// ListAppUsers retrieves all users in insertion order.
	ListAppUsers(ctx context.Context) ([]domain.AppUser, error)
}

// AppUserWriter defines write operations for application user profiles
type AppUserWriter interface {
	// SaveAppUser persists a new user and sets its UserID.
	SaveAppUser(ctx context.Context, user *domain.AppUser) error

	// UpdateAppUser applies the non-nil fields of patch.
	UpdateAppUser(ctx context.Context, userID string, patch domain.AppUserPatch) error

	// DeleteAppUser removes a user. Returns apperrors.ErrNotFound when absent.
	DeleteAppUser(ctx context.Context, userID string) error
}

// AppUserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type AppUserRepositoryFacade interface {
	AppUserReader
	AppUserWriter
}
