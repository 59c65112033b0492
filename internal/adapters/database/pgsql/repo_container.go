package pgsql

import (
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates a new repository provider backed by PostgreSQL.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := &BaseRepository{Pool: dbPool}
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   newPgxEmployeeRepository(base),
		DepartmentRepo: newPgxDepartmentRepository(base),
		RoleRepo:       newPgxRoleRepository(base),
		AccountRepo:    newPgxAccountRepository(base),
		AppUserRepo:    newPgxAppUserRepository(base),
		Health:         base,
	}
}
