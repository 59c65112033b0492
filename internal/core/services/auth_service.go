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
	"github.com/SscSPs/hr_records_app/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// verificationCodeBytes yields a 6 hex character code.
const verificationCodeBytes = 3

var (
	errMissingFields      = apperrors.NewAppError(apperrors.ErrValidation, "All fields are required")
	errUsernameTaken      = apperrors.NewAppError(apperrors.ErrDuplicate, "Username already exists")
	errInvalidCredentials = apperrors.NewAppError(apperrors.ErrUnauthorized, "Invalid credentials")
	errAccountInactive    = apperrors.NewAppError(apperrors.ErrForbidden, "Account is inactive")
	errAccountNotFound    = apperrors.NewAppError(apperrors.ErrNotFound, "User not found")
	errPasswordTooLong    = apperrors.NewAppError(apperrors.ErrValidation, "Password must be at most 72 bytes")
)

// authService implements AuthSvcFacade on top of the credential store.
type authService struct {
	BaseService
	accountRepo portsrepo.CredentialRepositoryFacade
	tokens      portssvc.TokenSvcFacade
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(accountRepo portsrepo.CredentialRepositoryFacade, tokens portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

// Register creates an active, unverified account with a bcrypt password hash.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, errMissingFields
	}

	existing, err := s.accountRepo.FindAccountByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up username", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, errUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errPasswordTooLong
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	code, err := utils.GenerateSecureRandomString(verificationCodeBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate verification code")
		return nil, err
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = domain.DefaultAccountRole
	}

	account := &domain.Account{
		Username:         req.Username,
		PasswordHash:     hash,
		Phone:            req.Phone,
		Role:             role,
		IsActive:         true,
		IsVerified:       false,
		VerificationCode: &code,
		AuditFields:      domain.AuditFields{CreatedAt: time.Now().UTC()},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		// two registrations racing past the lookup land here
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, errUsernameTaken
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	s.LogInfo(ctx, "Account registered", slog.String("account_id", account.AccountID), slog.String("role", account.Role))
	return account, nil
}

// Login verifies credentials and issues an access token. Unknown usernames and
// wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.Account, error) {
	if req.Username == "" || req.Password == "" {
		return "", nil, errInvalidCredentials
	}

	account, err := s.accountRepo.FindAccountByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up account for login")
		return "", nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		s.LogWarn(ctx, "Login rejected", slog.String("account_id", account.AccountID))
		return "", nil, errInvalidCredentials
	}

	if !account.IsActive {
		return "", nil, errAccountInactive
	}

	token, _, err := s.tokens.GenerateAccessToken(ctx, account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

// CurrentUser resolves the account referenced by a verified token subject.
func (s *authService) CurrentUser(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errAccountNotFound
		}
		s.LogError(ctx, err, "Failed to load current account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}

// SetAccountActive enables or disables login for the account.
func (s *authService) SetAccountActive(ctx context.Context, username string, active bool) error {
	if err := s.accountRepo.SetActive(ctx, username, active); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errAccountNotFound
		}
		s.LogError(ctx, err, "Failed to update account state", slog.String("username", username))
		return fmt.Errorf("failed to set account active state: %w", err)
	}
	s.LogInfo(ctx, "Account state changed", slog.String("username", username), slog.Bool("is_active", active))
	return nil
}

// MarkAccountVerified sets is_verified on the account.
func (s *authService) MarkAccountVerified(ctx context.Context, username string) error {
	if err := s.accountRepo.SetVerified(ctx, username); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errAccountNotFound
		}
		s.LogError(ctx, err, "Failed to verify account", slog.String("username", username))
		return fmt.Errorf("failed to mark account verified: %w", err)
	}
	return nil
}
