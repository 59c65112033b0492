package mapping

import (
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/models"
)

// ToDomainDepartment converts a department document. EmployeeCount is left zero.
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{DepartmentID: m.ID.Hex(), Nom: m.Nom}
}

// ToDomainDepartmentSlice converts a slice of department documents.
func ToDomainDepartmentSlice(ms []models.Department) []domain.Department {
	ds := make([]domain.Department, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepartment(m)
	}
	return ds
}

// ToDomainRole converts a role document.
func ToDomainRole(m models.Role) domain.Role {
	return domain.Role{RoleID: m.ID.Hex(), Nom: m.Nom, Description: m.Description}
}

// ToDomainRoleSlice converts a slice of role documents.
func ToDomainRoleSlice(ms []models.Role) []domain.Role {
	ds := make([]domain.Role, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRole(m)
	}
	return ds
}
