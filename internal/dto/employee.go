package dto

import (
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data accepted when creating an employee.
// No field is mandatory; departement, when present, must name an existing department.
type CreateEmployeeRequest struct {
	Nom          string           `json:"nom"`
	Prenom       string           `json:"prenom"`
	Email        string           `json:"email"`
	Departement  string           `json:"departement"`
	Role         string           `json:"role"`
	DateEmbauche string           `json:"date_embauche"`
	Salaire      *decimal.Decimal `json:"salaire"`
}

// UpdateEmployeeRequest defines a shallow merge: omitted fields stay unchanged.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateEmployeeRequest struct {
	Nom          *string          `json:"nom"`
	Prenom       *string          `json:"prenom"`
	Email        *string          `json:"email"`
	Departement  *string          `json:"departement"`
	Role         *string          `json:"role"`
	DateEmbauche *string          `json:"date_embauche"`
	Salaire      *decimal.Decimal `json:"salaire"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateEmployeeRequest) ToPatch() domain.EmployeePatch {
	return domain.EmployeePatch{
		Nom:          r.Nom,
		Prenom:       r.Prenom,
		Email:        r.Email,
		Departement:  r.Departement,
		Role:         r.Role,
		DateEmbauche: r.DateEmbauche,
		Salaire:      r.Salaire,
	}
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Page    int    `form:"page,default=1" binding:"min=1"`
	PerPage int    `form:"per_page,default=10" binding:"min=1"`
	Search  string `form:"search"`
}

// EmployeeResponse is the external shape of an employee. Absent optional
// values surface as empty strings.
type EmployeeResponse struct {
	ID           string `json:"id"`
	Nom          string `json:"nom"`
	Prenom       string `json:"prenom"`
	Email        string `json:"email"`
	Departement  string `json:"departement"`
	Role         string `json:"role"`
	DateEmbauche string `json:"date_embauche"`
	Salaire      string `json:"salaire"`
}

// ListEmployeesResponse is one page of employees plus the total match count.
type ListEmployeesResponse struct {
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PerPage  int                `json:"per_page"`
	Employes []EmployeeResponse `json:"employes"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.EmployeeID,
		Nom:          e.Nom,
		Prenom:       e.Prenom,
		Email:        e.Email,
		Departement:  e.Departement,
		Role:         e.Role,
		DateEmbauche: e.DateEmbauche,
	}
	if e.Salaire != nil {
		resp.Salaire = e.Salaire.String()
	}
	return resp
}

// ToEmployeeResponses converts a slice of domain employees, never returning nil.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}

// ImportEmployeesResponse reports the outcome of a bulk text upload.
type ImportEmployeesResponse struct {
	Status string `json:"status"`
	Added  int    `json:"added"`
}
