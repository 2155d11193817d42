package persistence

import (
	"context"
	"errors"

	"github.com/wordnest/backend/internal/domain/learning"
	"github.com/wordnest/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by ID with its category and owner preloaded
func (r *GormItemRepository) FindByID(ctx context.Context, id uint) (*learning.LearningItem, error) {
	var item learning.LearningItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByCategory returns the items of a category admitted by the visibility
// filter, newest first. Without an owner in the filter only public items
// qualify.
func (r *GormItemRepository) FindByCategory(ctx context.Context, categoryID uint, vis learning.Visibility) ([]learning.LearningItem, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Where("category_id = ?", categoryID)

	if vis.OwnerID != nil {
		query = query.Where("is_public = ? OR user_id = ?", true, *vis.OwnerID)
	} else {
		query = query.Where("is_public = ?", true)
	}

	var items []learning.LearningItem
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindOwnedBy returns the private items owned by a user, newest first
func (r *GormItemRepository) FindOwnedBy(ctx context.Context, userID uint) ([]learning.LearningItem, error) {
	var items []learning.LearningItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Where("user_id = ? AND is_public = ?", userID, false).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new item
func (r *GormItemRepository) Create(ctx context.Context, item *learning.LearningItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

// Save persists changes to an existing item. Associations are read-only views
// and never written back.
func (r *GormItemRepository) Save(ctx context.Context, item *learning.LearningItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

// Ensure GormItemRepository implements ItemRepository
var _ learning.ItemRepository = (*GormItemRepository)(nil)
