package handler

import (
	"github.com/gin-gonic/gin"
	learningapp "github.com/wordnest/backend/internal/application/learning"
	"github.com/wordnest/backend/internal/infrastructure/auth"
	"github.com/wordnest/backend/internal/interfaces/http/middleware"
)

// CategoryHandler handles category reads and the admin category CRUD
type CategoryHandler struct {
	BaseHandler
	categories *learningapp.CategoryService
	tokens     *auth.TokenService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories *learningapp.CategoryService, tokens *auth.TokenService) *CategoryHandler {
	return &CategoryHandler{categories: categories, tokens: tokens}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/categories")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}

	adminGroup := rg.Group("/categories")
	adminGroup.Use(middleware.Auth(h.tokens), middleware.AdminOnly())
	{
		adminGroup.POST("", h.Create)
		adminGroup.PUT("/:id", h.Update)
		adminGroup.DELETE("/:id", h.Delete)
	}
}

// List returns all categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, categories)
}

// Get returns a single category with its items
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid category id")
		return
	}

	category, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, category)
}

// CreateCategoryRequest is the body of an explicit category create
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create creates a category explicitly
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Category name is required")
		return
	}

	category, err := h.categories.Create(c.Request.Context(), learningapp.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, category)
}

// UpdateCategoryRequest is the body of a category update
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Update updates a category
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid category id")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, learningapp.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, category)
}

// Delete removes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid category id")
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
