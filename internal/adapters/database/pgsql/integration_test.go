//go:build integration

package pgsql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	"github.com/SscSPs/hr_records_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// Run with: PGSQL_TEST_URL=postgres://... go test -tags integration ./internal/adapters/database/pgsql/
// The tables are truncated between tests, so point it at a throwaway database.
type PgxStoreTestSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
}

func (suite *PgxStoreTestSuite) SetupSuite() {
	url := os.Getenv("PGSQL_TEST_URL")
	if url == "" {
		suite.T().Skip("PGSQL_TEST_URL not set")
	}
	ctx := context.Background()

	pool, err := database.NewPgxPool(ctx, url)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.Require().NoError(EnsureSchema(ctx, pool))
	suite.repos = NewRepositoryProvider(pool)
}

func (suite *PgxStoreTestSuite) TearDownSuite() {
	database.ClosePgxPool(suite.pool)
}

func (suite *PgxStoreTestSuite) SetupTest() {
	_, err := suite.pool.Exec(context.Background(), `TRUNCATE employes, departements`)
	suite.Require().NoError(err)
}

func (suite *PgxStoreTestSuite) saveEmployee(nom, email, departement string) {
	employee := &domain.Employee{Nom: nom, Email: email, Departement: departement}
	employee.CreatedAt = time.Now().UTC()
	suite.Require().NoError(suite.repos.EmployeeRepo.SaveEmployee(context.Background(), employee))
}

func (suite *PgxStoreTestSuite) TestRenameDepartment_MovesEveryEmployee() {
	ctx := context.Background()
	dept := &domain.Department{Nom: "Eng"}
	suite.Require().NoError(suite.repos.DepartmentRepo.SaveDepartment(ctx, dept))

	count, err := suite.repos.EmployeeRepo.CountEmployeesByDepartement(ctx, "Eng")
	suite.Require().NoError(err)
	suite.Zero(count)

	suite.saveEmployee("Dupont", "a@x.io", "Eng")
	count, err = suite.repos.EmployeeRepo.CountEmployeesByDepartement(ctx, "Eng")
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.saveEmployee("Martin", "b@x.io", "Eng")
	suite.saveEmployee("Durand", "c@x.io", "Sales")

	suite.Require().NoError(suite.repos.DepartmentRepo.RenameDepartment(ctx, dept.DepartmentID, "Eng", "Engineering"))

	renamed, err := suite.repos.DepartmentRepo.FindDepartmentByID(ctx, dept.DepartmentID)
	suite.Require().NoError(err)
	suite.Equal("Engineering", renamed.Nom)

	left, err := suite.repos.EmployeeRepo.CountEmployeesByDepartement(ctx, "Eng")
	suite.Require().NoError(err)
	suite.Zero(left)
	moved, err := suite.repos.EmployeeRepo.FindEmployeesByDepartement(ctx, "Engineering")
	suite.Require().NoError(err)
	suite.Len(moved, 2)
	others, err := suite.repos.EmployeeRepo.CountEmployeesByDepartement(ctx, "Sales")
	suite.Require().NoError(err)
	suite.Equal(int64(1), others)
}

func (suite *PgxStoreTestSuite) TestFindEmployees_SearchesNomOrEmail() {
	ctx := context.Background()
	suite.saveEmployee("Martin", "one@x.io", "")
	suite.saveEmployee("Dupont", "MARTINE@x.io", "")
	suite.saveEmployee("Laxby", "other@x.io", "")
	suite.saveEmployee("a_b", "under@x.io", "")

	total, err := suite.repos.EmployeeRepo.CountEmployees(ctx, "martin")
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)

	page, err := suite.repos.EmployeeRepo.FindEmployees(ctx, domain.EmployeeFilter{Search: "martin", Limit: 1, Offset: 1})
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal("Dupont", page[0].Nom)

	noWildcard, err := suite.repos.EmployeeRepo.CountEmployees(ctx, "a_b")
	suite.Require().NoError(err)
	suite.Equal(int64(1), noWildcard)

	all, err := suite.repos.EmployeeRepo.CountEmployees(ctx, "")
	suite.Require().NoError(err)
	suite.Equal(int64(4), all)
}

func TestPgxStore(t *testing.T) {
	suite.Run(t, new(PgxStoreTestSuite))
}
