package identity

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/wordnest/backend/internal/domain/identity"
	"github.com/wordnest/backend/internal/domain/shared"
	"github.com/wordnest/backend/internal/infrastructure/auth"
	"github.com/wordnest/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const dateOfBirthLayout = "2006-01-02"

// AuthService handles registration and both login flows. The admin flow
// checks a fixed credential pair from configuration and never touches the
// users table.
type AuthService struct {
	users  identity.UserRepository
	tokens *auth.TokenService
	admin  config.AdminConfig
	logger *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.UserRepository, tokens *auth.TokenService, admin config.AdminConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		admin:  admin,
		logger: logger,
	}
}

// Register creates a child account and logs it in
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	dob, err := time.Parse(dateOfBirthLayout, input.DateOfBirth)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "dateOfBirth must be in YYYY-MM-DD format")
	}

	user, err := identity.NewUser(input.ChildName, dob, input.MobileNumber, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Mobile number already registered")
		}
		return nil, err
	}

	token, err := s.tokens.IssueUserToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.Uint("user_id", user.ID))

	return &AuthResult{User: ToUserResponse(user), Token: token}, nil
}

// Login authenticates a child account by mobile number and password. Unknown
// numbers and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByMobileNumber(ctx, input.MobileNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid mobile number or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid mobile number or password")
	}

	token, err := s.tokens.IssueUserToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: ToUserResponse(user), Token: token}, nil
}

// AdminLogin authenticates the fixed admin credential pair
func (s *AuthService) AdminLogin(ctx context.Context, input AdminLoginInput) (*AdminAuthResult, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.admin.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(s.admin.Password)) == 1
	if !usernameOK || !passwordOK {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid admin credentials")
	}

	token, err := s.tokens.IssueAdminToken(input.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin logged in", zap.String("username", input.Username))

	return &AdminAuthResult{Username: input.Username, Role: auth.RoleAdmin, Token: token}, nil
}

// Profile returns the account view for a user id
func (s *AuthService) Profile(ctx context.Context, userID uint) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}
