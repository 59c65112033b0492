package dto

import (
	"time"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create an application user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"nonblank"`
	Email string `json:"email" binding:"nonblank"`
	Role  string `json:"role" binding:"nonblank"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateUserRequest) ToPatch() domain.AppUserPatch {
	return domain.AppUserPatch{Name: r.Name, Email: r.Email, Role: r.Role}
}

// UserResponse is the external shape of an application user.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.AppUser to UserResponse DTO
func ToUserResponse(u *domain.AppUser) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.AppUser to ListUsersResponse DTO
func ToListUserResponse(users []domain.AppUser) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
