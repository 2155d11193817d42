// Package seed provisions the starter vocabulary every fresh install ships
// with.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/wordnest/backend/internal/domain/learning"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedCategory struct {
	Name        string
	Description string
	Icon        string
}

type seedItem struct {
	Category string
	Name     string
}

var defaultCategories = []seedCategory{
	{Name: "Animals", Description: "Learn about different animals", Icon: "paw"},
	{Name: "Fruits", Description: "Learn about delicious fruits", Icon: "apple"},
	{Name: "Family Members", Description: "Learn about family members", Icon: "people"},
	{Name: "Colors", Description: "Learn about colors", Icon: "palette"},
}

var defaultItems = []seedItem{
	{Category: "Fruits", Name: "Apple"},
	{Category: "Fruits", Name: "Banana"},
	{Category: "Fruits", Name: "Orange"},
	{Category: "Animals", Name: "Cat"},
	{Category: "Animals", Name: "Dog"},
	{Category: "Animals", Name: "Bird"},
	{Category: "Animals", Name: "Fish"},
	{Category: "Family Members", Name: "Mother"},
	{Category: "Family Members", Name: "Father"},
	{Category: "Family Members", Name: "Sister"},
	{Category: "Family Members", Name: "Brother"},
	{Category: "Colors", Name: "Red"},
	{Category: "Colors", Name: "Blue"},
	{Category: "Colors", Name: "Green"},
}

// Seeder populates a fresh database with the default categories, their
// starter items and an English pronunciation for each item. Seeded items are
// public and ownerless so every child sees them.
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Run seeds the database. It is idempotent: a database that already holds any
// category is left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&learning.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if count > 0 {
		s.logger.Info("Database already seeded, skipping", zap.Int64("categories", count))
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryIDs := make(map[string]uint, len(defaultCategories))

		for _, sc := range defaultCategories {
			category := &learning.Category{
				Name:        sc.Name,
				Description: sc.Description,
				Icon:        sc.Icon,
				IsDefault:   true,
			}
			if err := tx.Create(category).Error; err != nil {
				return fmt.Errorf("failed to seed category %q: %w", sc.Name, err)
			}
			categoryIDs[sc.Name] = category.ID
		}

		for _, si := range defaultItems {
			item := &learning.LearningItem{
				CategoryID:  categoryIDs[si.Category],
				ItemName:    si.Name,
				ImageURL:    defaultImageURL(si.Name),
				Description: "Learn the word: " + si.Name,
				IsPublic:    true,
			}
			if err := tx.Create(item).Error; err != nil {
				return fmt.Errorf("failed to seed item %q: %w", si.Name, err)
			}

			pron := &learning.Pronunciation{
				ItemID:    item.ID,
				Text:      si.Name,
				Language:  learning.DefaultPronunciationLanguage,
				IsDefault: true,
			}
			if err := tx.Create(pron).Error; err != nil {
				return fmt.Errorf("failed to seed pronunciation for %q: %w", si.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Database seeded",
		zap.Int("categories", len(defaultCategories)),
		zap.Int("items", len(defaultItems)))
	return nil
}

func defaultImageURL(name string) string {
	return "/uploads/images/default-" + strings.ToLower(name) + ".jpg"
}
