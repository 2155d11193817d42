package learning

import (
	"context"
	"errors"

	"github.com/wordnest/backend/internal/domain/identity"
	"github.com/wordnest/backend/internal/domain/learning"
	"github.com/wordnest/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ItemService orchestrates the learning-item lifecycle: category
// reconciliation, upload storage, ownership assignment and the visibility
// rules for reads.
type ItemService struct {
	items      learning.ItemRepository
	categories *CategoryService
	users      identity.UserRepository
	prons      learning.PronunciationRepository
	files      FileStore
	logger     *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(
	items learning.ItemRepository,
	categories *CategoryService,
	users identity.UserRepository,
	prons learning.PronunciationRepository,
	files FileStore,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:      items,
		categories: categories,
		users:      users,
		prons:      prons,
		files:      files,
		logger:     logger,
	}
}

// Create creates a learning item for the caller. The category is resolved by
// name, created on the fly when unknown. A photo upload is mandatory; a voice
// recording is optional.
func (s *ItemService) Create(ctx context.Context, caller identity.Principal, input CreateItemInput) (*ItemResponse, error) {
	if input.CategoryName == "" || input.ItemName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Both `category` and `name` fields are required")
	}
	if resolveUpload(input.Files, SlotPhoto) == nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Photo file is required (field name: `photo` or `image`)")
	}

	category, err := s.categories.Reconcile(ctx, input.CategoryName, caller.IsAdmin())
	if err != nil {
		return nil, err
	}

	ownership := learning.OwnershipFor(caller, s.ownerExists(ctx, caller))

	imageURL, err := storeSlot(ctx, s.files, input.Files, SlotPhoto)
	if err != nil {
		return nil, err
	}
	voiceURL, err := storeSlot(ctx, s.files, input.Files, SlotVoice)
	if err != nil {
		return nil, err
	}

	item := &learning.LearningItem{
		UserID:      ownership.UserID,
		CategoryID:  category.ID,
		ItemName:    input.ItemName,
		ImageURL:    *imageURL,
		VoiceURL:    voiceURL,
		Description: input.Description,
		IsPublic:    ownership.IsPublic,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Learning item created",
		zap.Uint("item_id", item.ID),
		zap.String("category", category.Name),
		zap.Bool("is_public", item.IsPublic))

	return s.joinedView(ctx, item.ID)
}

// Update applies a partial update to an item. Only admin or the item's owner
// may update; ownerless private items are immutable to non-admins. The
// category may be switched by existing id or by (possibly new) name, and both
// uploads may be replaced.
func (s *ItemService) Update(ctx context.Context, caller identity.Principal, id uint, input UpdateItemInput) (*ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !item.CanBeUpdatedBy(caller) {
		return nil, shared.NewDomainError("FORBIDDEN", "Not authorized to update this item")
	}

	switch {
	case input.CategoryID != nil:
		if _, err := s.categories.categories.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("VALIDATION_ERROR", "Provided categoryId does not exist")
			}
			return nil, err
		}
		item.CategoryID = *input.CategoryID
	case input.CategoryName != "":
		category, err := s.categories.Reconcile(ctx, input.CategoryName, false)
		if err != nil {
			return nil, err
		}
		item.CategoryID = category.ID
	}

	if imageURL, err := storeSlot(ctx, s.files, input.Files, SlotPhoto); err != nil {
		return nil, err
	} else if imageURL != nil {
		item.ImageURL = *imageURL
	}
	if voiceURL, err := storeSlot(ctx, s.files, input.Files, SlotVoice); err != nil {
		return nil, err
	} else if voiceURL != nil {
		item.VoiceURL = voiceURL
	}

	if input.ItemName != "" {
		item.ItemName = input.ItemName
	}
	if input.Description != nil {
		item.Description = *input.Description
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	return s.joinedView(ctx, item.ID)
}

// ListByCategory returns the items of a category visible to the caller:
// public items plus, for a registered child, their own private items.
func (s *ItemService) ListByCategory(ctx context.Context, caller identity.Principal, categoryID uint) ([]ItemResponse, error) {
	if _, err := s.categories.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	items, err := s.items.FindByCategory(ctx, categoryID, learning.VisibilityFor(caller))
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// MyItems returns the caller's private items across all categories
func (s *ItemService) MyItems(ctx context.Context, userID uint) ([]ItemResponse, error) {
	items, err := s.items.FindOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// GetByID returns a single item with its category, owner and pronunciations.
// No visibility filter applies to direct fetch by id.
func (s *ItemService) GetByID(ctx context.Context, id uint) (*ItemResponse, error) {
	return s.joinedView(ctx, id)
}

// ownerExists verifies that the caller's user row is still present. Lookup
// failures count as unverified so the new item degrades to ownerless rather
// than referencing a missing row.
func (s *ItemService) ownerExists(ctx context.Context, caller identity.Principal) bool {
	id, ok := caller.UserID()
	if !ok {
		return false
	}
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		s.logger.Warn("Owner existence check failed, creating item without owner",
			zap.Uint("user_id", id), zap.Error(err))
		return false
	}
	return exists
}

// joinedView re-reads an item with its associations and pronunciations
func (s *ItemService) joinedView(ctx context.Context, id uint) (*ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	prons, err := s.prons.FindByItem(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.Pronunciations = prons
	return resp, nil
}
