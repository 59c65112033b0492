package domain

// AppUser is an admin-managed profile record. It has no credentials and
// cannot log in; accounts that can are modelled by Account.
type AppUser struct {
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// AppUserPatch holds the mutable profile fields. Nil fields are left untouched.
type AppUserPatch struct {
	Name  *string
	Email *string
	Role  *string
}

// IsEmpty reports whether the patch would change nothing.
func (p AppUserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil
}
