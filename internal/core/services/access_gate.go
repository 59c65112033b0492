package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/platform/config"
)

const bearerPrefix = "Bearer "

type accessGate struct {
	BaseService
	apiKey         string
	loopbackBypass bool
	tokens         portssvc.TokenSvcFacade
}

// NewAccessGate creates the gate applying the API-key and bearer rules.
func NewAccessGate(cfg *config.Config, tokens portssvc.TokenSvcFacade) portssvc.AccessGateSvc {
	return &accessGate{
		apiKey:         cfg.APIKey,
		loopbackBypass: cfg.APIKeyLoopbackBypass,
		tokens:         tokens,
	}
}

// AuthorizeAPIKey allows loopback callers (when enabled) and callers presenting
// exactly the configured key.
func (g *accessGate) AuthorizeAPIKey(ctx context.Context, req domain.RequestContext) error {
	if g.loopbackBypass && req.IsLoopback() {
		return nil
	}
	if g.apiKey == "" || req.APIKey == "" {
		return fmt.Errorf("%w: missing API key", apperrors.ErrUnauthorized)
	}
	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(g.apiKey)) != 1 {
		return fmt.Errorf("%w: invalid API key", apperrors.ErrUnauthorized)
	}
	return nil
}

// AuthorizeBearer expects "Bearer <token>" and returns the verified subject.
func (g *accessGate) AuthorizeBearer(ctx context.Context, authorizationHeader string) (string, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return "", fmt.Errorf("%w: missing bearer token", apperrors.ErrUnauthorized)
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if token == "" {
		return "", fmt.Errorf("%w: empty bearer token", apperrors.ErrUnauthorized)
	}
	return g.tokens.ParseAccessToken(ctx, token)
}
