package services

import (
	"context"
	"time"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/dto"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed token whose subject is the account ID.
	GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error)

	// ParseAccessToken verifies a token and returns its subject.
	ParseAccessToken(ctx context.Context, token string) (string, error)
}

// AuthSvcFacade defines registration, login and account state operations.
type AuthSvcFacade interface {
	// Register creates an active, unverified account.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)

	// Login checks credentials and returns a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.Account, error)

	// CurrentUser resolves the account a token subject refers to.
	CurrentUser(ctx context.Context, accountID string) (*domain.Account, error)

	// SetAccountActive enables or disables login for an account.
	SetAccountActive(ctx context.Context, username string, active bool) error

	// MarkAccountVerified flags an account as verified.
	MarkAccountVerified(ctx context.Context, username string) error
}

// AccessGateSvc authorizes inbound requests.
type AccessGateSvc interface {
	// AuthorizeAPIKey applies the shared-secret rule, bypassed for loopback callers.
	AuthorizeAPIKey(ctx context.Context, req domain.RequestContext) error

	// AuthorizeBearer validates an Authorization header and returns the token subject.
	AuthorizeBearer(ctx context.Context, authorizationHeader string) (string, error)
}
