package dto

import (
	"time"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
)

// RegisterRequest carries a self-service account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"nonblank"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"nonblank"`
	Role     string `json:"role"`
}

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PublicProfile is the subset of an account returned on login.
type PublicProfile struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        PublicProfile `json:"user"`
}

// AccountResponse is an account without its password hash.
type AccountResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	IsActive         bool      `json:"is_active"`
	IsVerified       bool      `json:"is_verified"`
	VerificationCode *string   `json:"verification_code"`
	CreatedAt        time.Time `json:"created_at"`
}

// CurrentUserResponse wraps the profile returned by /auth/me.
type CurrentUserResponse struct {
	User AccountResponse `json:"user"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResultResponse acknowledges a deletion.
type ResultResponse struct {
	Result string `json:"result"`
}

// ToPublicProfile converts an account into the login profile.
func ToPublicProfile(a *domain.Account) PublicProfile {
	return PublicProfile{Username: a.Username, Phone: a.Phone, Role: a.Role}
}

// ToAccountResponse converts a domain.Account, dropping the password hash.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:               a.AccountID,
		Username:         a.Username,
		Phone:            a.Phone,
		Role:             a.Role,
		IsActive:         a.IsActive,
		IsVerified:       a.IsVerified,
		VerificationCode: a.VerificationCode,
		CreatedAt:        a.CreatedAt,
	}
}
