package learning

import (
	"context"
	"errors"

	"github.com/wordnest/backend/internal/domain/learning"
	"github.com/wordnest/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category reconciliation and the admin-facing
// category CRUD.
type CategoryService struct {
	categories learning.CategoryRepository
	logger     *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories learning.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger,
	}
}

// Reconcile maps a free-text category name to a stable category record,
// creating one if absent. The create is optimistic: when two writers race on
// a never-before-seen name, the storage uniqueness constraint lets exactly
// one insert win and the loser re-reads the winner's row. A uniqueness
// conflict is therefore equivalent to "found", never an error.
func (s *CategoryService) Reconcile(ctx context.Context, name string, isDefault bool) (*learning.Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Category name is required")
	}

	category, err := s.categories.FindByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	category, err = learning.NewCategory(name, isDefault)
	if err != nil {
		return nil, err
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// Lost the race; the row exists now
			s.logger.Debug("Category create lost uniqueness race, re-reading",
				zap.String("name", name))
			return s.categories.FindByName(ctx, name)
		}
		return nil, err
	}

	return category, nil
}

// List returns all categories with their items
func (s *CategoryService) List(ctx context.Context) ([]learning.Category, error) {
	return s.categories.FindAll(ctx)
}

// GetByID returns a category with its items
func (s *CategoryService) GetByID(ctx context.Context, id uint) (*learning.Category, error) {
	return s.categories.FindByIDWithItems(ctx, id)
}

// Create creates a custom category explicitly. Unlike Reconcile, an existing
// name is a conflict surfaced to the caller.
func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*learning.Category, error) {
	category, err := learning.NewCategory(input.Name, false)
	if err != nil {
		return nil, err
	}
	category.Description = input.Description

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category already exists")
		}
		return nil, err
	}

	return category, nil
}

// Update updates a category's name and description
func (s *CategoryService) Update(ctx context.Context, id uint, input UpdateCategoryInput) (*learning.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Update(input.Name, input.Description); err != nil {
		return nil, err
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
