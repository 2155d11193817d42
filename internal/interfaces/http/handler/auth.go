package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/wordnest/backend/internal/application/identity"
	"github.com/wordnest/backend/internal/infrastructure/auth"
	"github.com/wordnest/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles registration and both login flows
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	tokens      *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/profile", middleware.Auth(h.tokens), h.Profile)
	}

	adminGroup := rg.Group("/admin")
	{
		adminGroup.POST("/login", h.AdminLogin)
	}
}

// Register creates a child account and returns it with a fresh token
func (h *AuthHandler) Register(c *gin.Context) {
	var input identityapp.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "childName, dateOfBirth, mobileNumber and password are required")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// Login authenticates a child account
func (h *AuthHandler) Login(c *gin.Context) {
	var input identityapp.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "mobileNumber and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// AdminLogin authenticates the fixed admin credential pair
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var input identityapp.AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "username and password are required")
		return
	}

	result, err := h.authService.AdminLogin(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Profile returns the authenticated user's account
func (h *AuthHandler) Profile(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	userID, ok := caller.UserID()
	if !ok {
		h.NotFound(c, "Profile is only available for registered users")
		return
	}

	profile, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}
