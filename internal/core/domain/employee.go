package domain

import "github.com/shopspring/decimal"

// Employee is a managed HR record. Departement holds the department name,
// not its id; the reference is checked only when the employee is written.
type Employee struct {
	EmployeeID   string           `json:"employeeID"`
	Nom          string           `json:"nom"`
	Prenom       string           `json:"prenom"`
	Email        string           `json:"email"`
	Departement  string           `json:"departement"`
	Role         string           `json:"role"`
	DateEmbauche string           `json:"dateEmbauche"`
	Salaire      *decimal.Decimal `json:"salaire,omitempty"`
	AuditFields
}

// EmployeePatch carries the fields of a shallow merge. Nil fields are left untouched.
type EmployeePatch struct {
	Nom          *string
	Prenom       *string
	Email        *string
	Departement  *string
	Role         *string
	DateEmbauche *string
	Salaire      *decimal.Decimal
}

// IsEmpty reports whether the patch would change nothing.
func (p EmployeePatch) IsEmpty() bool {
	return p.Nom == nil && p.Prenom == nil && p.Email == nil && p.Departement == nil &&
		p.Role == nil && p.DateEmbauche == nil && p.Salaire == nil
}

// EmployeeFilter selects a window of employees.
// Search matches nom or email, case-insensitively, as a substring.
type EmployeeFilter struct {
	Search string
	Limit  int
	Offset int
}
