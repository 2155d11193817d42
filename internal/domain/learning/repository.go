package learning

import "context"

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByIDWithItems finds a category with its items preloaded
	FindByIDWithItems(ctx context.Context, id uint) (*Category, error)

	// FindByName finds a category by its exact, case-sensitive name
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindAll returns all categories, newest first
	FindAll(ctx context.Context) ([]Category, error)

	// Create inserts a new category. Returns shared.ErrAlreadyExists when a
	// category with the same name already exists, so callers racing on the
	// same name can fall back to re-reading the winner.
	Create(ctx context.Context, category *Category) error

	// Save persists changes to an existing category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uint) error

	// Count counts all categories
	Count(ctx context.Context) (int64, error)
}

// ItemRepository defines the interface for learning item persistence
type ItemRepository interface {
	// FindByID finds an item by ID with its category and owner preloaded
	FindByID(ctx context.Context, id uint) (*LearningItem, error)

	// FindByCategory returns the items of a category admitted by the
	// visibility filter, newest first, with category and owner preloaded
	FindByCategory(ctx context.Context, categoryID uint, vis Visibility) ([]LearningItem, error)

	// FindOwnedBy returns the private items owned by a user, newest first
	FindOwnedBy(ctx context.Context, userID uint) ([]LearningItem, error)

	// Create inserts a new item
	Create(ctx context.Context, item *LearningItem) error

	// Save persists changes to an existing item
	Save(ctx context.Context, item *LearningItem) error
}

// PronunciationRepository defines the interface for pronunciation persistence
type PronunciationRepository interface {
	// FindByID finds a pronunciation by its ID
	FindByID(ctx context.Context, id uint) (*Pronunciation, error)

	// FindByItem returns all pronunciations for an item, newest first
	FindByItem(ctx context.Context, itemID uint) ([]Pronunciation, error)

	// Create inserts a new pronunciation
	Create(ctx context.Context, pronunciation *Pronunciation) error

	// Save persists changes to an existing pronunciation
	Save(ctx context.Context, pronunciation *Pronunciation) error

	// Delete deletes a pronunciation
	Delete(ctx context.Context, id uint) error
}
