package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wordnest/backend/internal/domain/identity"
	"github.com/wordnest/backend/internal/domain/shared"
	"github.com/wordnest/backend/internal/infrastructure/auth"
	"github.com/wordnest/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByMobileNumber(ctx context.Context, mobile string) (*identity.User, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newAuthService(users *MockUserRepository) *AuthService {
	tokens := auth.NewTokenService(config.JWTConfig{
		Secret:               "test-secret",
		UserTokenExpiration:  time.Hour,
		AdminTokenExpiration: time.Hour,
		Issuer:               "wordnest-test",
	})
	admin := config.AdminConfig{Username: "admin", Password: "Admin@123"}
	return NewAuthService(users, tokens, admin, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
		return u.ChildName == "Mia" && u.MobileNumber == "0700000001" && u.PasswordHash != ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*identity.User).ID = 7
	}).Return(nil)

	result, err := svc.Register(context.Background(), RegisterInput{
		ChildName:    "Mia",
		DateOfBirth:  "2019-04-02",
		MobileNumber: "0700000001",
		Password:     "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.User.ID)
	assert.NotEmpty(t, result.Token)
	users.AssertExpectations(t)
}

func TestAuthService_Register_BadDate(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		ChildName:    "Mia",
		DateOfBirth:  "02/04/2019",
		MobileNumber: "0700000001",
		Password:     "hunter22",
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateMobile(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

	_, err := svc.Register(context.Background(), RegisterInput{
		ChildName:    "Mia",
		DateOfBirth:  "2019-04-02",
		MobileNumber: "0700000001",
		Password:     "hunter22",
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	assert.Equal(t, "Mobile number already registered", domainErr.Message)
}

func TestAuthService_Login(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	user, err := identity.NewUser("Mia", time.Date(2019, 4, 2, 0, 0, 0, 0, time.UTC), "0700000001", "hunter22")
	require.NoError(t, err)
	user.ID = 7
	users.On("FindByMobileNumber", mock.Anything, "0700000001").Return(user, nil)

	result, err := svc.Login(context.Background(), LoginInput{MobileNumber: "0700000001", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.User.ID)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	user, err := identity.NewUser("Mia", time.Date(2019, 4, 2, 0, 0, 0, 0, time.UTC), "0700000001", "hunter22")
	require.NoError(t, err)
	users.On("FindByMobileNumber", mock.Anything, "0700000001").Return(user, nil)

	_, err = svc.Login(context.Background(), LoginInput{MobileNumber: "0700000001", Password: "nope"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	assert.Equal(t, "Invalid mobile number or password", domainErr.Message)
}

func TestAuthService_Login_UnknownNumberSameMessage(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("FindByMobileNumber", mock.Anything, "0700009999").Return(nil, shared.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginInput{MobileNumber: "0700009999", Password: "hunter22"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	assert.Equal(t, "Invalid mobile number or password", domainErr.Message)
}

func TestAuthService_AdminLogin(t *testing.T) {
	svc := newAuthService(new(MockUserRepository))

	result, err := svc.AdminLogin(context.Background(), AdminLoginInput{Username: "admin", Password: "Admin@123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Username)
	assert.Equal(t, auth.RoleAdmin, result.Role)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_AdminLogin_BadCredentials(t *testing.T) {
	svc := newAuthService(new(MockUserRepository))

	_, err := svc.AdminLogin(context.Background(), AdminLoginInput{Username: "admin", Password: "wrong"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	assert.Equal(t, "Invalid admin credentials", domainErr.Message)
}
