package dto

import "github.com/SscSPs/hr_records_app/internal/core/domain"

// DepartmentRequest is used to create or rename a department.
type DepartmentRequest struct {
	Nom string `json:"nom" binding:"nonblank"`
}

// DepartmentResponse defines the data returned for a department.
type DepartmentResponse struct {
	ID             string `json:"id"`
	Nom            string `json:"nom"`
	NombreEmployes int64  `json:"nombre_employes"`
}

// DepartmentDetailResponse embeds the employees referencing the department.
type DepartmentDetailResponse struct {
	DepartmentResponse
	Employes []EmployeeResponse `json:"employes"`
}

// ToDepartmentResponse converts a domain.Department to DepartmentResponse DTO
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:             d.DepartmentID,
		Nom:            d.Nom,
		NombreEmployes: d.EmployeeCount,
	}
}

// ToListDepartmentResponse converts a slice of departments to response DTOs
func ToListDepartmentResponse(departments []domain.Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(departments))
	for i := range departments {
		res[i] = ToDepartmentResponse(&departments[i])
	}
	return res
}

// ToDepartmentDetailResponse converts a department detail, shaping nested employees too.
func ToDepartmentDetailResponse(d *domain.DepartmentDetail) DepartmentDetailResponse {
	return DepartmentDetailResponse{
		DepartmentResponse: ToDepartmentResponse(&d.Department),
		Employes:           ToEmployeeResponses(d.Employees),
	}
}
