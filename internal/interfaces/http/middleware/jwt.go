package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wordnest/backend/internal/domain/identity"
	"github.com/wordnest/backend/internal/infrastructure/auth"
	"github.com/wordnest/backend/internal/interfaces/http/dto"
)

// Auth context keys and header constants
const (
	PrincipalKey  = "auth_principal"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Auth creates middleware that requires a valid bearer token. The resolved
// principal is stored in the request context for handlers.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "Authorization token is required")
			return
		}

		principal, err := tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// OptionalAuth creates middleware that resolves a bearer token when one is
// present but never rejects the request. A missing, malformed or expired
// token simply leaves the caller anonymous.
func OptionalAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		principal, err := tokens.Verify(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// AdminOnly creates middleware that rejects non-admin callers. It must run
// after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CallerIdentity(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Admin access required"))
			return
		}
		c.Next()
	}
}

// CallerIdentity returns the principal resolved for this request. Requests
// that carried no valid token are anonymous.
func CallerIdentity(c *gin.Context) identity.Principal {
	if value, exists := c.Get(PrincipalKey); exists {
		if principal, ok := value.(identity.Principal); ok {
			return principal
		}
	}
	return identity.Anonymous()
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(AuthHeaderKey)
	if header == "" || !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, BearerPrefix)
	if token == "" {
		return "", false
	}
	return token, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
