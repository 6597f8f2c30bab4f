package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/core/services"
	"github.com/SscSPs/construction_billing_app/internal/dto"
	"github.com/SscSPs/construction_billing_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock RoleProvider ---
type MockRoleProvider struct {
	mock.Mock
}

func (m *MockRoleProvider) RoleOf(ctx context.Context, userID string) (domain.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Role), args.Error(1)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
	now      time.Time
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.now = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	suite.service = services.NewUserService(suite.mockRepo, "root", services.WithClock(func() time.Time { return suite.now }))
	suite.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRoleOf() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "qc-1").Return(&domain.User{UserID: "qc-1", Role: domain.RoleQC, IsActive: true}, nil).Once()
	suite.mockRepo.On("FindUserByID", suite.ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByID", suite.ctx, "off").Return(&domain.User{UserID: "off", Role: domain.RoleAdmin, IsActive: false}, nil).Once()

	role, err := suite.service.RoleOf(suite.ctx, "qc-1")
	suite.NoError(err)
	suite.Equal(domain.RoleQC, role)

	role, err = suite.service.RoleOf(suite.ctx, "gone")
	suite.NoError(err)
	suite.Equal(domain.RoleViewer, role)

	role, err = suite.service.RoleOf(suite.ctx, "off")
	suite.NoError(err)
	suite.Equal(domain.RoleViewer, role, "inactive users lose their role")

	role, err = suite.service.RoleOf(suite.ctx, "root")
	suite.NoError(err)
	suite.Equal(domain.RoleAdmin, role)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRoleOf_RepositoryError() {
	dbErr := errors.New("connection reset")
	suite.mockRepo.On("FindUserByID", suite.ctx, "pm-1").Return(nil, dbErr).Once()

	_, err := suite.service.RoleOf(suite.ctx, "pm-1")
	suite.ErrorIs(err, dbErr)
}

func (suite *UserServiceTestSuite) TestUpsertUser_CreatesNew() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "pm-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "pm-1" && u.Role == domain.RoleProjectManager && u.IsActive &&
			u.CreatedBy == "root" && u.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	user, err := suite.service.UpsertUser(suite.ctx, "pm-1", dto.UpsertUserRequest{Name: "Priya", Role: "projectManager"}, "root")

	suite.Require().NoError(err)
	suite.Equal("Priya", user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpsertUser_PreservesCreation() {
	created := suite.now.Add(-48 * time.Hour)
	existing := &domain.User{UserID: "qc-1", Role: domain.RoleQC, IsActive: true,
		AuditFields: domain.AuditFields{CreatedAt: created, CreatedBy: "founder"}}
	suite.mockRepo.On("FindUserByID", suite.ctx, "qc-1").Return(existing, nil).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.CreatedAt.Equal(created) && u.CreatedBy == "founder" && !u.IsActive && u.LastUpdatedBy == "root"
	})).Return(nil).Once()

	user, err := suite.service.UpsertUser(suite.ctx, "qc-1", dto.UpsertUserRequest{Role: "qc", IsActive: dto.BoolPtr(false)}, "root")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleViewer, user.EffectiveRole())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpsertUser_Forbidden() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "pm-1").Return(&domain.User{UserID: "pm-1", Role: domain.RoleProjectManager, IsActive: true}, nil).Once()

	_, err := suite.service.UpsertUser(suite.ctx, "qc-1", dto.UpsertUserRequest{Role: "admin"}, "pm-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpsertUser_UnknownRole() {
	_, err := suite.service.UpsertUser(suite.ctx, "x", dto.UpsertUserRequest{Role: "foreman"}, "root")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestListUsers_Empty() {
	suite.mockRepo.On("ListUsers", suite.ctx).Return(nil, nil).Once()

	users, err := suite.service.ListUsers(suite.ctx)

	suite.NoError(err)
	suite.NotNil(users)
	suite.Empty(users)
}

func (suite *UserServiceTestSuite) TestDeleteUser_WithoutGuard() {
	err := suite.service.DeleteUser(suite.ctx, "qc-1", "secret", "root")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

// --- Deletion guard ---

func TestDeletionGuard(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashSecret("s3cret")
	require.NoError(t, err)

	roles := new(MockRoleProvider)
	roles.On("RoleOf", ctx, "admin").Return(domain.RoleAdmin, nil)
	roles.On("RoleOf", ctx, "billing").Return(domain.RoleBillingEngineer, nil)
	roles.On("RoleOf", ctx, "broken").Return(domain.Role(""), errors.New("boom"))

	guard := services.NewDeletionGuard(roles, hash)

	tests := []struct {
		name    string
		actor   string
		secret  string
		wantErr error
	}{
		{"admin with secret", "admin", "s3cret", nil},
		{"admin with wrong secret", "admin", "guess", apperrors.ErrUnauthorized},
		{"admin without secret", "admin", "", apperrors.ErrUnauthorized},
		{"non-admin with secret", "billing", "s3cret", apperrors.ErrForbidden},
		{"non-admin with wrong secret", "billing", "guess", apperrors.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.AuthorizeDeletion(ctx, tt.actor, tt.secret)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("role lookup failure", func(t *testing.T) {
		err := guard.AuthorizeDeletion(ctx, "broken", "s3cret")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("empty hash refuses everything", func(t *testing.T) {
		disabled := services.NewDeletionGuard(roles, "")
		assert.ErrorIs(t, disabled.AuthorizeDeletion(ctx, "admin", "s3cret"), apperrors.ErrUnauthorized)
	})
}
