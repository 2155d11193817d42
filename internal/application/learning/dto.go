package learning

import (
	"mime/multipart"
	"time"

	"github.com/wordnest/backend/internal/domain/learning"
)

// CreateItemInput carries the fields of an item-create request. Files is the
// raw uploaded-file collection keyed by field name.
type CreateItemInput struct {
	CategoryName string
	ItemName     string
	Description  string
	Files        map[string][]*multipart.FileHeader
}

// UpdateItemInput carries the fields of an item-update request. Zero values
// leave the corresponding item field untouched; a category may be chosen
// either by existing id or by (possibly new) name.
type UpdateItemInput struct {
	CategoryID   *uint
	CategoryName string
	ItemName     string
	Description  *string
	Files        map[string][]*multipart.FileHeader
}

// CategoryRef is the denormalized category fragment of an item view.
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// OwnerRef is the denormalized owner fragment of an item view.
type OwnerRef struct {
	ID        uint   `json:"id"`
	ChildName string `json:"childName"`
}

// ItemResponse is a learning item joined with its category and owner for
// display.
type ItemResponse struct {
	ID             uint                     `json:"id"`
	UserID         *uint                    `json:"userId"`
	CategoryID     uint                     `json:"categoryId"`
	ItemName       string                   `json:"itemName"`
	ImageURL       string                   `json:"imageUrl"`
	VoiceURL       *string                  `json:"voiceUrl"`
	Description    string                   `json:"description,omitempty"`
	IsPublic       bool                     `json:"isPublic"`
	Category       *CategoryRef             `json:"category,omitempty"`
	User           *OwnerRef                `json:"user,omitempty"`
	Pronunciations []learning.Pronunciation `json:"pronunciations,omitempty"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

// ToItemResponse builds the denormalized item view
func ToItemResponse(item *learning.LearningItem) *ItemResponse {
	resp := &ItemResponse{
		ID:          item.ID,
		UserID:      item.UserID,
		CategoryID:  item.CategoryID,
		ItemName:    item.ItemName,
		ImageURL:    item.ImageURL,
		VoiceURL:    item.VoiceURL,
		Description: item.Description,
		IsPublic:    item.IsPublic,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.Category != nil {
		resp.Category = &CategoryRef{ID: item.Category.ID, Name: item.Category.Name}
	}
	if item.User != nil {
		resp.User = &OwnerRef{ID: item.User.ID, ChildName: item.User.ChildName}
	}
	return resp
}

// ToItemResponses maps a list of items to their views
func ToItemResponses(items []learning.LearningItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = *ToItemResponse(&items[i])
	}
	return responses
}

// CreateCategoryInput carries the fields of an explicit category create.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput carries the fields of a category update. Empty fields
// are left unchanged.
type UpdateCategoryInput struct {
	Name        string
	Description string
}

// CreatePronunciationInput carries the fields of a pronunciation create.
type CreatePronunciationInput struct {
	ItemID   uint
	Text     string
	Language string
	Files    map[string][]*multipart.FileHeader
}

// UpdatePronunciationInput carries the fields of a pronunciation update.
// Empty fields are left unchanged.
type UpdatePronunciationInput struct {
	Text     string
	Language string
	Files    map[string][]*multipart.FileHeader
}
