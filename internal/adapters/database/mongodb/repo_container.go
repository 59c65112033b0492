package mongodb

import (
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider creates a new repository provider backed by MongoDB.
func NewRepositoryProvider(client *mongo.Client, db *mongo.Database, useTransactions bool) portsrepo.RepositoryProvider {
	base := NewBaseRepository(client, db, useTransactions)
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   NewEmployeeRepository(base),
		DepartmentRepo: NewDepartmentRepository(base),
		RoleRepo:       NewRoleRepository(base),
		AccountRepo:    NewAccountRepository(base),
		AppUserRepo:    NewAppUserRepository(base),
		Health:         base,
	}
}
