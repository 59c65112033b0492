package services

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/dto"
)

// AppUserReaderSvc defines read operations for application user data
type AppUserReaderSvc interface {
	// GetAppUserByID retrieves a user by ID.
	GetAppUserByID(ctx context.Context, userID string) (*domain.AppUser, error)

	// ListAppUsers retrieves all users.
	ListAppUsers(ctx context.Context) ([]domain.AppUser, error)
}

// AppUserWriterSvc defines write operations for application user data
type AppUserWriterSvc interface {
	// CreateAppUser creates a new, active user.
	CreateAppUser(ctx context.Context, req dto.CreateUserRequest) (*domain.AppUser, error)

	// UpdateAppUser updates name, email and/or role.
	UpdateAppUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.AppUser, error)

	// DeleteAppUser removes a user.
	DeleteAppUser(ctx context.Context, userID string) error
}

// AppUserSvcFacade combines all user-related service interfaces
type AppUserSvcFacade interface {
	AppUserReaderSvc
	AppUserWriterSvc
}
