package mapping

import (
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/models"
)

// ToModelAccount converts a domain Account to its document form.
func ToModelAccount(d domain.Account) models.Account {
	active := d.IsActive
	return models.Account{
		Username:         d.Username,
		PasswordHash:     d.PasswordHash,
		Phone:            d.Phone,
		Role:             d.Role,
		IsActive:         &active,
		IsVerified:       d.IsVerified,
		VerificationCode: d.VerificationCode,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainAccount converts an account document. Documents without an
// is_active field count as active.
func ToDomainAccount(m models.Account) domain.Account {
	active := m.IsActive == nil || *m.IsActive
	return domain.Account{
		AccountID:        m.ID.Hex(),
		Username:         m.Username,
		PasswordHash:     m.PasswordHash,
		Phone:            m.Phone,
		Role:             m.Role,
		IsActive:         active,
		IsVerified:       m.IsVerified,
		VerificationCode: m.VerificationCode,
		AuditFields:      domain.AuditFields{CreatedAt: m.CreatedAt},
	}
}

// ToModelAppUser converts a domain AppUser to its document form.
func ToModelAppUser(d domain.AppUser) models.AppUser {
	return models.AppUser{
		Name:      d.Name,
		Email:     d.Email,
		Role:      d.Role,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAppUser converts a user document.
func ToDomainAppUser(m models.AppUser) domain.AppUser {
	return domain.AppUser{
		UserID:      m.ID.Hex(),
		Name:        m.Name,
		Email:       m.Email,
		Role:        m.Role,
		IsActive:    m.IsActive,
		AuditFields: domain.AuditFields{CreatedAt: m.CreatedAt},
	}
}

// ToDomainAppUserSlice converts a slice of user documents.
func ToDomainAppUserSlice(ms []models.AppUser) []domain.AppUser {
	ds := make([]domain.AppUser, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAppUser(m)
	}
	return ds
}
