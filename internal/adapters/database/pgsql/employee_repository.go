package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, nom, prenom, email, departement, role, date_embauche, salaire, created_at`

// searchClause is shared by the list and count queries; $1 is the ILIKE
// pattern or NULL for no filter.
const searchClause = `($1::text IS NULL OR nom ILIKE $1 OR email ILIKE $1)`

type PgxEmployeeRepository struct {
	*BaseRepository
}

func newPgxEmployeeRepository(base *BaseRepository) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: base}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.CollectableRow) (domain.Employee, error) {
	var e domain.Employee
	var id uuid.UUID
	err := row.Scan(&id, &e.Nom, &e.Prenom, &e.Email, &e.Departement, &e.Role, &e.DateEmbauche, &e.Salaire, &e.CreatedAt)
	e.EmployeeID = id.String()
	return e, err
}

func searchArg(search string) *string {
	if search == "" {
		return nil
	}
	pattern := likePattern(search)
	return &pattern
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	id, err := parseID(employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+employeeColumns+` FROM employes WHERE id = $1`, id)
	if err != nil {
		return nil, mapError(err, "find employee")
	}
	employee, err := pgx.CollectExactlyOneRow(rows, scanEmployee)
	if err != nil {
		return nil, mapError(err, "find employee")
	}
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}
	query := `SELECT ` + employeeColumns + ` FROM employes WHERE ` + searchClause + `
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`
	return r.query(ctx, query, searchArg(filter.Search), limit, filter.Offset)
}

func (r *PgxEmployeeRepository) CountEmployees(ctx context.Context, search string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM employes WHERE `+searchClause, searchArg(search)).Scan(&count)
	if err != nil {
		return 0, mapError(err, "count employees")
	}
	return count, nil
}

func (r *PgxEmployeeRepository) FindEmployeesByDepartement(ctx context.Context, nom string) ([]domain.Employee, error) {
	return r.query(ctx, `SELECT `+employeeColumns+` FROM employes WHERE departement = $1 ORDER BY created_at, id`, nom)
}

func (r *PgxEmployeeRepository) CountEmployeesByDepartement(ctx context.Context, nom string) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM employes WHERE departement = $1`, nom).Scan(&count); err != nil {
		return 0, mapError(err, "count department employees")
	}
	return count, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee *domain.Employee) error {
	id := uuid.New()
	query := `
		INSERT INTO employes (id, nom, prenom, email, departement, role, date_embauche, salaire, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		id,
		employee.Nom,
		employee.Prenom,
		employee.Email,
		employee.Departement,
		employee.Role,
		employee.DateEmbauche,
		employee.Salaire,
		employee.CreatedAt,
	)
	if err != nil {
		return mapError(err, "insert employee")
	}
	employee.EmployeeID = id.String()
	return nil
}

// UpdateEmployee keeps the stored value of every column whose patch field is nil.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) error {
	id, err := parseID(employeeID)
	if err != nil {
		return err
	}

	query := `
		UPDATE employes SET
			nom           = COALESCE($2, nom),
			prenom        = COALESCE($3, prenom),
			email         = COALESCE($4, email),
			departement   = COALESCE($5, departement),
			role          = COALESCE($6, role),
			date_embauche = COALESCE($7, date_embauche),
			salaire       = COALESCE($8, salaire)
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		id,
		patch.Nom,
		patch.Prenom,
		patch.Email,
		patch.Departement,
		patch.Role,
		patch.DateEmbauche,
		patch.Salaire,
	)
	if err != nil {
		return mapError(err, "update employee")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	id, err := parseID(employeeID)
	if err != nil {
		return err
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM employes WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete employee")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) query(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "query employees")
	}
	employees, err := pgx.CollectRows(rows, scanEmployee)
	if err != nil {
		return nil, mapError(err, "scan employees")
	}
	return employees, nil
}
