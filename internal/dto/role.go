package dto

import "github.com/SscSPs/hr_records_app/internal/core/domain"

// RoleRequest is used to create or update a role. Both fields are required.
type RoleRequest struct {
	Nom         string `json:"nom" binding:"nonblank"`
	Description string `json:"description" binding:"nonblank"`
}

// RoleResponse defines the data returned for a role.
type RoleResponse struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Description string `json:"description"`
}

// ToRoleResponse converts a domain.Role to RoleResponse DTO
func ToRoleResponse(r *domain.Role) RoleResponse {
	return RoleResponse{ID: r.RoleID, Nom: r.Nom, Description: r.Description}
}

// ToListRoleResponse converts a slice of roles to response DTOs
func ToListRoleResponse(roles []domain.Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i := range roles {
		res[i] = ToRoleResponse(&roles[i])
	}
	return res
}
