package services_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/core/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployees   *MockEmployeeRepository
	mockDepartments *MockDepartmentRepository
	service         portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployees = new(MockEmployeeRepository)
	suite.mockDepartments = new(MockDepartmentRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployees, suite.mockDepartments)
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.mockEmployees.AssertExpectations(suite.T())
	suite.mockDepartments.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_PageWindow() {
	ctx := context.Background()
	page := []domain.Employee{{EmployeeID: "e3", Nom: "Martin"}}

	suite.mockEmployees.On("CountEmployees", ctx, "mart").Return(int64(3), nil).Once()
	suite.mockEmployees.On("FindEmployees", ctx, domain.EmployeeFilter{Search: "mart", Limit: 2, Offset: 2}).Return(page, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, dto.ListEmployeesParams{Page: 2, PerPage: 2, Search: "  mart "})

	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.Total)
	suite.Equal(2, resp.Page)
	suite.Equal(2, resp.PerPage)
	suite.Require().Len(resp.Employes, 1)
	suite.Equal("e3", resp.Employes[0].ID)
	suite.Equal("", resp.Employes[0].Departement)
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_DefaultsAndEmptyPage() {
	ctx := context.Background()

	suite.mockEmployees.On("CountEmployees", ctx, "").Return(int64(0), nil).Once()
	suite.mockEmployees.On("FindEmployees", ctx, domain.EmployeeFilter{Limit: 10, Offset: 0}).Return(nil, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, dto.ListEmployeesParams{})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(10, resp.PerPage)
	suite.NotNil(resp.Employes)
	suite.Empty(resp.Employes)
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_PageBeyondRangeIsEmpty() {
	ctx := context.Background()
	suite.mockEmployees.On("CountEmployees", ctx, "").Return(int64(25), nil).Once()

	resp, err := suite.service.ListEmployees(ctx, dto.ListEmployeesParams{Page: math.MaxInt/10 + 2, PerPage: 10})

	suite.Require().NoError(err)
	suite.Equal(int64(25), resp.Total)
	suite.Equal(math.MaxInt/10+2, resp.Page)
	suite.NotNil(resp.Employes)
	suite.Empty(resp.Employes)
	suite.mockEmployees.AssertNotCalled(suite.T(), "FindEmployees", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_RepoError() {
	ctx := context.Background()
	suite.mockEmployees.On("CountEmployees", ctx, "").Return(int64(0), assert.AnError).Once()

	resp, err := suite.service.ListEmployees(ctx, dto.ListEmployeesParams{Page: 1, PerPage: 10})

	suite.Nil(resp)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployeeByID_NotFound() {
	ctx := context.Background()
	suite.mockEmployees.On("FindEmployeeByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	emp, err := suite.service.GetEmployeeByID(ctx, "missing")

	suite.Nil(emp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Employé non trouvé", apperrors.Message(err, ""))
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	salaire := decimal.RequireFromString("42000.50")
	req := dto.CreateEmployeeRequest{Nom: "Durand", Prenom: "Alice", Email: "a@x.fr", Departement: "RH", Salaire: &salaire}

	suite.mockDepartments.On("FindDepartmentByName", ctx, "RH").Return(&domain.Department{DepartmentID: "d1", Nom: "RH"}, nil).Once()
	suite.mockEmployees.On("SaveEmployee", ctx, mock.MatchedBy(func(e *domain.Employee) bool {
		return e.Nom == "Durand" && e.Departement == "RH" && e.Salaire.Equal(salaire) && !e.CreatedAt.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Employee).EmployeeID = "e1"
	}).Return(nil).Once()

	emp, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("e1", emp.EmployeeID)
	suite.Equal("Alice", emp.Prenom)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_UnknownDepartment() {
	ctx := context.Background()
	suite.mockDepartments.On("FindDepartmentByName", ctx, "Ghost").Return(nil, apperrors.ErrNotFound).Once()

	emp, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{Nom: "X", Departement: "Ghost"})

	suite.Nil(emp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Département 'Ghost' non trouvé", apperrors.Message(err, ""))
	suite.mockEmployees.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NoDepartmentSkipsCheck() {
	ctx := context.Background()
	suite.mockEmployees.On("SaveEmployee", ctx, mock.AnythingOfType("*domain.Employee")).Return(nil).Once()

	_, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{Nom: "Solo"})

	suite.Require().NoError(err)
	suite.mockDepartments.AssertNotCalled(suite.T(), "FindDepartmentByName", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_MergesAndReturnsRecord() {
	ctx := context.Background()
	email := "new@x.fr"
	req := dto.UpdateEmployeeRequest{Email: &email}
	merged := &domain.Employee{EmployeeID: "e1", Nom: "Durand", Email: email}

	suite.mockEmployees.On("UpdateEmployee", ctx, "e1", domain.EmployeePatch{Email: &email}).Return(nil).Once()
	suite.mockEmployees.On("FindEmployeeByID", ctx, "e1").Return(merged, nil).Once()

	emp, err := suite.service.UpdateEmployee(ctx, "e1", req)

	suite.Require().NoError(err)
	suite.Equal(merged, emp)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_UnknownDepartment() {
	ctx := context.Background()
	dep := "Ghost"
	suite.mockDepartments.On("FindDepartmentByName", ctx, dep).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateEmployee(ctx, "e1", dto.UpdateEmployeeRequest{Departement: &dep})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployees.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_NotFound() {
	ctx := context.Background()
	nom := "Y"
	suite.mockEmployees.On("UpdateEmployee", ctx, "missing", mock.Anything).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateEmployee(ctx, "missing", dto.UpdateEmployeeRequest{Nom: &nom})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee() {
	ctx := context.Background()
	suite.mockEmployees.On("DeleteEmployee", ctx, "e1").Return(nil).Once()
	suite.mockEmployees.On("DeleteEmployee", ctx, "e1").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteEmployee(ctx, "e1"))
	err := suite.service.DeleteEmployee(ctx, "e1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Employé non trouvé", apperrors.Message(err, ""))
}

func (suite *EmployeeServiceTestSuite) TestImportEmployees_SkipsShortLines() {
	ctx := context.Background()
	body := "Durand, Alice ,a@x.fr,RH\nMartin,Bob,b@x.fr,IT,extra\nbroken,line\nLeroy,Chloe,c@x.fr,Ghost\r\n"

	var saved []*domain.Employee
	suite.mockEmployees.On("SaveEmployee", ctx, mock.AnythingOfType("*domain.Employee")).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(1).(*domain.Employee))
	}).Return(nil).Times(3)

	added, err := suite.service.ImportEmployees(ctx, strings.NewReader(body))

	suite.Require().NoError(err)
	suite.Equal(3, added)
	suite.Require().Len(saved, 3)
	suite.Equal("Alice", saved[0].Prenom)
	suite.Equal("IT", saved[1].Departement)
	suite.Equal("Ghost", saved[2].Departement)
	suite.mockDepartments.AssertNotCalled(suite.T(), "FindDepartmentByName", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestImportEmployees_StopsOnStoreError() {
	ctx := context.Background()
	suite.mockEmployees.On("SaveEmployee", ctx, mock.Anything).Return(nil).Once()
	suite.mockEmployees.On("SaveEmployee", ctx, mock.Anything).Return(assert.AnError).Once()

	added, err := suite.service.ImportEmployees(ctx, strings.NewReader("a,b,c,d\ne,f,g,h\ni,j,k,l\n"))

	suite.ErrorIs(err, assert.AnError)
	suite.Equal(1, added)
}

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
