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

type PgxDepartmentRepository struct {
	*BaseRepository
}

func newPgxDepartmentRepository(base *BaseRepository) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{BaseRepository: base}
}

var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

func scanDepartment(row pgx.CollectableRow) (domain.Department, error) {
	var d domain.Department
	var id uuid.UUID
	err := row.Scan(&id, &d.Nom)
	d.DepartmentID = id.String()
	return d, err
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	id, err := parseID(departmentID)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, `SELECT id, nom FROM departements WHERE id = $1`, id)
}

func (r *PgxDepartmentRepository) FindDepartmentByName(ctx context.Context, nom string) (*domain.Department, error) {
	return r.findOne(ctx, `SELECT id, nom FROM departements WHERE nom = $1`, nom)
}

func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, nom FROM departements ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(err, "list departments")
	}
	departments, err := pgx.CollectRows(rows, scanDepartment)
	if err != nil {
		return nil, mapError(err, "scan departments")
	}
	return departments, nil
}

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department *domain.Department) error {
	id := uuid.New()
	if _, err := r.Pool.Exec(ctx, `INSERT INTO departements (id, nom) VALUES ($1, $2)`, id, department.Nom); err != nil {
		return mapError(err, "insert department")
	}
	department.DepartmentID = id.String()
	return nil
}

// RenameDepartment renames the department and its employees in one transaction.
func (r *PgxDepartmentRepository) RenameDepartment(ctx context.Context, departmentID, oldNom, newNom string) error {
	id, err := parseID(departmentID)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `UPDATE departements SET nom = $2 WHERE id = $1`, id, newNom)
	if err != nil {
		return mapError(err, "rename department")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("department %s: %w", departmentID, apperrors.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `UPDATE employes SET departement = $2 WHERE departement = $1`, oldNom, newNom); err != nil {
		return mapError(err, "cascade department rename")
	}

	return r.Commit(ctx, tx)
}

func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	id, err := parseID(departmentID)
	if err != nil {
		return err
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM departements WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete department")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("department %s: %w", departmentID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDepartmentRepository) findOne(ctx context.Context, query string, arg any) (*domain.Department, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, mapError(err, "find department")
	}
	department, err := pgx.CollectExactlyOneRow(rows, scanDepartment)
	if err != nil {
		return nil, mapError(err, "find department")
	}
	return &department, nil
}
