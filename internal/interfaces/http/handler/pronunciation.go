package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	learningapp "github.com/wordnest/backend/internal/application/learning"
	"github.com/wordnest/backend/internal/infrastructure/auth"
	"github.com/wordnest/backend/internal/interfaces/http/middleware"
)

// PronunciationHandler handles the spoken renderings attached to items
type PronunciationHandler struct {
	BaseHandler
	prons  *learningapp.PronunciationService
	tokens *auth.TokenService
}

// NewPronunciationHandler creates a new PronunciationHandler
func NewPronunciationHandler(prons *learningapp.PronunciationService, tokens *auth.TokenService) *PronunciationHandler {
	return &PronunciationHandler{prons: prons, tokens: tokens}
}

// RegisterRoutes registers pronunciation routes. The public listing takes an
// item id in the wildcard position the admin routes use for the
// pronunciation id.
func (h *PronunciationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pronunciations/:id", h.ListByItem)

	group := rg.Group("/pronunciations")
	group.Use(middleware.Auth(h.tokens), middleware.AdminOnly())
	{
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// ListByItem returns all pronunciations for an item
func (h *PronunciationHandler) ListByItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item id")
		return
	}

	prons, err := h.prons.ListByItem(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, prons)
}

// Create attaches a pronunciation to an item from a multipart form
func (h *PronunciationHandler) Create(c *gin.Context) {
	rawItemID := c.PostForm("itemId")
	itemID, err := strconv.ParseUint(rawItemID, 10, 32)
	if err != nil || itemID == 0 {
		h.BadRequest(c, "A valid itemId is required")
		return
	}

	pron, err := h.prons.Create(c.Request.Context(), learningapp.CreatePronunciationInput{
		ItemID:   uint(itemID),
		Text:     c.PostForm("text"),
		Language: c.PostForm("language"),
		Files:    formFiles(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, pron)
}

// Update applies a partial update to a pronunciation
func (h *PronunciationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid pronunciation id")
		return
	}

	pron, err := h.prons.Update(c.Request.Context(), id, learningapp.UpdatePronunciationInput{
		Text:     c.PostForm("text"),
		Language: c.PostForm("language"),
		Files:    formFiles(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, pron)
}

// Delete removes a pronunciation
func (h *PronunciationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid pronunciation id")
		return
	}

	if err := h.prons.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
