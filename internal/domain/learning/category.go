package learning

import (
	"time"

	"github.com/wordnest/backend/internal/domain/shared"
)

// Category is a named grouping of learning items. The namespace is global and
// unique by exact name; the uniqueness constraint at the storage layer is what
// keeps concurrent find-or-create reconciliation from producing duplicates.
type Category struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Icon        string         `gorm:"size:255" json:"icon,omitempty"`
	IsDefault   bool           `gorm:"not null;default:false" json:"isDefault"`
	Items       []LearningItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category. isDefault is true only for categories
// authored by the admin or the seeder.
func NewCategory(name string, isDefault bool) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	return &Category{
		Name:      name,
		IsDefault: isDefault,
	}, nil
}

// Update updates the category's basic information. Empty fields are left
// unchanged.
func (c *Category) Update(name, description string) error {
	if name != "" {
		if err := validateCategoryName(name); err != nil {
			return err
		}
		c.Name = name
	}
	if description != "" {
		c.Description = description
	}
	c.UpdatedAt = time.Now()
	return nil
}

func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Category name is required")
	}
	if len(name) > 255 {
		return shared.NewDomainError("VALIDATION_ERROR", "Category name cannot exceed 255 characters")
	}
	return nil
}
