package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wordnest/backend/internal/domain/identity"
	"github.com/wordnest/backend/internal/infrastructure/config"
)

// RoleAdmin is the role claim embedded by the admin login flow. User tokens
// carry no role claim and default to a plain user identity.
const RoleAdmin = "admin"

// Common errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Claims represents custom JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"id,omitempty"`
	ChildName    string `json:"childName,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Role         string `json:"role,omitempty"`
	Username     string `json:"username,omitempty"`
}

// TokenService issues and verifies the bearer credentials for both login
// flows. One process-wide secret signs everything; rotating it invalidates
// all outstanding tokens.
type TokenService struct {
	secret   []byte
	userTTL  time.Duration
	adminTTL time.Duration
	issuer   string
}

// NewTokenService creates a new TokenService
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.Secret),
		userTTL:  cfg.UserTokenExpiration,
		adminTTL: cfg.AdminTokenExpiration,
		issuer:   cfg.Issuer,
	}
}

// IssueUserToken issues a credential for a registered child.
func (s *TokenService) IssueUserToken(user *identity.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.userTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:       user.ID,
		ChildName:    user.ChildName,
		MobileNumber: user.MobileNumber,
	}
	return s.sign(claims)
}

// IssueAdminToken issues a credential for the fixed-credential admin login.
// Admin tokens have a shorter lifetime and no user id.
func (s *TokenService) IssueAdminToken(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.adminTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:     RoleAdmin,
		Username: username,
	}
	return s.sign(claims)
}

func (s *TokenService) sign(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify decodes a bearer credential into a caller principal. It returns
// ErrExpiredToken for expired credentials and ErrInvalidToken for anything
// else that does not verify.
func (s *TokenService) Verify(tokenString string) (identity.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Anonymous(), ErrExpiredToken
		}
		return identity.Anonymous(), ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return identity.Anonymous(), ErrInvalidClaims
	}

	if claims.Role == RoleAdmin {
		return identity.ForAdmin(), nil
	}
	if claims.UserID == 0 {
		return identity.Anonymous(), ErrInvalidClaims
	}
	return identity.ForUser(claims.UserID), nil
}
