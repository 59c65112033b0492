package domain

// Role is a lookup entry with a unique name.
type Role struct {
	RoleID      string `json:"roleID"`
	Nom         string `json:"nom"`
	Description string `json:"description"`
}
