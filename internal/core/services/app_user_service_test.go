package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/core/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AppUserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAppUserRepository
	service  portssvc.AppUserSvcFacade
}

func (suite *AppUserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAppUserRepository)
	suite.service = services.NewAppUserService(suite.mockRepo)
}

func (suite *AppUserServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AppUserServiceTestSuite) TestCreateAppUser_StampsDefaults() {
	ctx := context.Background()
	suite.mockRepo.On("SaveAppUser", ctx, mock.MatchedBy(func(u *domain.AppUser) bool {
		return u.IsActive && !u.CreatedAt.IsZero() && u.Name == "Alice"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.AppUser).UserID = "u1"
	}).Return(nil).Once()

	user, err := suite.service.CreateAppUser(ctx, dto.CreateUserRequest{Name: "Alice", Email: "a@x.fr", Role: "admin"})

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.True(user.IsActive)
}

func (suite *AppUserServiceTestSuite) TestCreateAppUser_MissingFields() {
	_, err := suite.service.CreateAppUser(context.Background(), dto.CreateUserRequest{Name: "Alice"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Name, email, and role are required", apperrors.Message(err, ""))
}

func (suite *AppUserServiceTestSuite) TestUpdateAppUser_NoFields() {
	_, err := suite.service.UpdateAppUser(context.Background(), "u1", dto.UpdateUserRequest{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("No valid fields to update", apperrors.Message(err, ""))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAppUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AppUserServiceTestSuite) TestUpdateAppUser_Success() {
	ctx := context.Background()
	role := "manager"
	suite.mockRepo.On("UpdateAppUser", ctx, "u1", domain.AppUserPatch{Role: &role}).Return(nil).Once()
	suite.mockRepo.On("FindAppUserByID", ctx, "u1").Return(&domain.AppUser{UserID: "u1", Role: role}, nil).Once()

	user, err := suite.service.UpdateAppUser(ctx, "u1", dto.UpdateUserRequest{Role: &role})

	suite.Require().NoError(err)
	suite.Equal("manager", user.Role)
}

func (suite *AppUserServiceTestSuite) TestUpdateAppUser_NotFound() {
	ctx := context.Background()
	name := "Bob"
	suite.mockRepo.On("UpdateAppUser", ctx, "missing", mock.Anything).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateAppUser(ctx, "missing", dto.UpdateUserRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("User not found", apperrors.Message(err, ""))
}

func (suite *AppUserServiceTestSuite) TestGetListDelete() {
	ctx := context.Background()
	suite.mockRepo.On("FindAppUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("ListAppUsers", ctx).Return([]domain.AppUser{{UserID: "u1"}}, nil).Once()
	suite.mockRepo.On("DeleteAppUser", ctx, "u1").Return(nil).Once()

	_, err := suite.service.GetAppUserByID(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	users, err := suite.service.ListAppUsers(ctx)
	suite.Require().NoError(err)
	suite.Len(users, 1)

	suite.NoError(suite.service.DeleteAppUser(ctx, "u1"))
}

func TestAppUserService(t *testing.T) {
	suite.Run(t, new(AppUserServiceTestSuite))
}
