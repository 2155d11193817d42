package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	learningapp "github.com/wordnest/backend/internal/application/learning"
	"github.com/wordnest/backend/internal/infrastructure/auth"
	"github.com/wordnest/backend/internal/interfaces/http/middleware"
)

// ItemHandler handles the learning-item lifecycle
type ItemHandler struct {
	BaseHandler
	items  *learningapp.ItemService
	tokens *auth.TokenService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(items *learningapp.ItemService, tokens *auth.TokenService) *ItemHandler {
	return &ItemHandler{items: items, tokens: tokens}
}

// RegisterRoutes registers item routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/items")
	group.Use(middleware.OptionalAuth(h.tokens))
	{
		group.POST("/create", h.Create)
		group.GET("/category/:categoryId", h.ListByCategory)
		group.GET("/my-items", middleware.Auth(h.tokens), h.MyItems)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
	}
}

// Create creates a learning item from a multipart form. The caller's token,
// when present and valid, decides ownership and visibility; anonymous and
// unverifiable callers produce private ownerless items.
func (h *ItemHandler) Create(c *gin.Context) {
	caller := middleware.CallerIdentity(c)

	input := learningapp.CreateItemInput{
		CategoryName: postFormAlias(c, "category", "categoryName"),
		ItemName:     postFormAlias(c, "name", "itemName"),
		Description:  c.PostForm("description"),
		Files:        formFiles(c),
	}

	item, err := h.items.Create(c.Request.Context(), caller, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, item)
}

// ListByCategory returns the items of a category visible to the caller
func (h *ItemHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		h.BadRequest(c, "Invalid category id")
		return
	}

	caller := middleware.CallerIdentity(c)
	items, err := h.items.ListByCategory(c.Request.Context(), caller, categoryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// Get returns a single item with its pronunciations
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item id")
		return
	}

	item, err := h.items.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Update applies a partial update to an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item id")
		return
	}

	caller := middleware.CallerIdentity(c)

	input := learningapp.UpdateItemInput{
		CategoryName: postFormAlias(c, "category", "categoryName"),
		ItemName:     postFormAlias(c, "name", "itemName"),
		Files:        formFiles(c),
	}
	if raw, exists := c.GetPostForm("categoryId"); exists && raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.BadRequest(c, "Provided categoryId does not exist")
			return
		}
		categoryID := uint(parsed)
		input.CategoryID = &categoryID
	}
	if description, exists := c.GetPostForm("description"); exists {
		input.Description = &description
	}

	item, err := h.items.Update(c.Request.Context(), caller, id, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// MyItems returns the caller's private items across all categories
func (h *ItemHandler) MyItems(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	userID, ok := caller.UserID()
	if !ok {
		h.NotFound(c, "Personal items are only available for registered users")
		return
	}

	items, err := h.items.MyItems(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}
