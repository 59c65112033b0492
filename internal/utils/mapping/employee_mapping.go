package mapping

import (
	"fmt"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToModelEmployee converts a domain Employee to its document form.
// The ID is left zero for the store to assign.
func ToModelEmployee(d domain.Employee) (models.Employee, error) {
	m := models.Employee{
		Nom:          d.Nom,
		Prenom:       d.Prenom,
		Email:        d.Email,
		Departement:  d.Departement,
		Role:         d.Role,
		DateEmbauche: d.DateEmbauche,
		CreatedAt:    d.CreatedAt,
	}
	salaire, err := ToDecimal128(d.Salaire)
	if err != nil {
		return models.Employee{}, err
	}
	m.Salaire = salaire
	return m, nil
}

// ToDomainEmployee converts an employee document to a domain Employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:   m.ID.Hex(),
		Nom:          m.Nom,
		Prenom:       m.Prenom,
		Email:        m.Email,
		Departement:  m.Departement,
		Role:         m.Role,
		DateEmbauche: m.DateEmbauche,
		Salaire:      FromDecimal128(m.Salaire),
		AuditFields:  domain.AuditFields{CreatedAt: m.CreatedAt},
	}
}

// ToDomainEmployeeSlice converts a slice of documents, never returning nil.
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}

// ToDecimal128 converts an optional decimal to its BSON representation.
func ToDecimal128(d *decimal.Decimal) (*primitive.Decimal128, error) {
	if d == nil {
		return nil, nil
	}
	dec, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return nil, fmt.Errorf("salaire %s does not fit decimal128: %w", d.String(), err)
	}
	return &dec, nil
}

// FromDecimal128 converts a stored Decimal128 back, dropping unparsable values.
func FromDecimal128(dec *primitive.Decimal128) *decimal.Decimal {
	if dec == nil {
		return nil
	}
	d, err := decimal.NewFromString(dec.String())
	if err != nil {
		return nil
	}
	return &d
}
