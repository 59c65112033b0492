package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
)

var (
	errUserFieldsRequired = apperrors.NewAppError(apperrors.ErrValidation, "Name, email, and role are required")
	errNoFieldsToUpdate   = apperrors.NewAppError(apperrors.ErrValidation, "No valid fields to update")
	errUserNotFound       = apperrors.NewAppError(apperrors.ErrNotFound, "User not found")
)

// appUserService implements AppUserSvcFacade.
type appUserService struct {
	BaseService
	userRepo portsrepo.AppUserRepositoryFacade
}

// NewAppUserService creates a new AppUserService.
func NewAppUserService(userRepo portsrepo.AppUserRepositoryFacade) portssvc.AppUserSvcFacade {
	return &appUserService{userRepo: userRepo}
}

// CreateAppUser stamps created_at and marks the user active.
func (s *appUserService) CreateAppUser(ctx context.Context, req dto.CreateUserRequest) (*domain.AppUser, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Role) == "" {
		return nil, errUserFieldsRequired
	}

	user := &domain.AppUser{
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC()},
	}

	if err := s.userRepo.SaveAppUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return user, nil
}

func (s *appUserService) GetAppUserByID(ctx context.Context, userID string) (*domain.AppUser, error) {
	user, err := s.userRepo.FindAppUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errUserNotFound
		}
		s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *appUserService) ListAppUsers(ctx context.Context) ([]domain.AppUser, error) {
	users, err := s.userRepo.ListAppUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.AppUser{}, nil
	}
	return users, nil
}

// UpdateAppUser changes name, email and role only.
func (s *appUserService) UpdateAppUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.AppUser, error) {
	patch := req.ToPatch()
	if patch.IsEmpty() {
		return nil, errNoFieldsToUpdate
	}

	if err := s.userRepo.UpdateAppUser(ctx, userID, patch); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errUserNotFound
		}
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetAppUserByID(ctx, userID)
}

func (s *appUserService) DeleteAppUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteAppUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errUserNotFound
		}
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
