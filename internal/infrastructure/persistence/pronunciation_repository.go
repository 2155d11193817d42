package persistence

import (
	"context"
	"errors"

	"github.com/wordnest/backend/internal/domain/learning"
	"github.com/wordnest/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPronunciationRepository implements PronunciationRepository using GORM
type GormPronunciationRepository struct {
	db *gorm.DB
}

// NewGormPronunciationRepository creates a new GormPronunciationRepository
func NewGormPronunciationRepository(db *gorm.DB) *GormPronunciationRepository {
	return &GormPronunciationRepository{db: db}
}

// FindByID finds a pronunciation by its ID
func (r *GormPronunciationRepository) FindByID(ctx context.Context, id uint) (*learning.Pronunciation, error) {
	var pron learning.Pronunciation
	if err := r.db.WithContext(ctx).First(&pron, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pron, nil
}

// FindByItem returns all pronunciations for an item, newest first
func (r *GormPronunciationRepository) FindByItem(ctx context.Context, itemID uint) ([]learning.Pronunciation, error) {
	var prons []learning.Pronunciation
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&prons).Error; err != nil {
		return nil, err
	}
	return prons, nil
}

// Create inserts a new pronunciation
func (r *GormPronunciationRepository) Create(ctx context.Context, pron *learning.Pronunciation) error {
	return r.db.WithContext(ctx).Create(pron).Error
}

// Save persists changes to an existing pronunciation
func (r *GormPronunciationRepository) Save(ctx context.Context, pron *learning.Pronunciation) error {
	return r.db.WithContext(ctx).Save(pron).Error
}

// Delete deletes a pronunciation
func (r *GormPronunciationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&learning.Pronunciation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPronunciationRepository implements PronunciationRepository
var _ learning.PronunciationRepository = (*GormPronunciationRepository)(nil)
