package newsimport

import (
	"context"
	"time"
)

// Category represents an editorial category a draft can be filed under.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the category contains invalid fields.
func (c *Category) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "category name required")
	}
	return nil
}

// CategoryService represents a service for managing categories.
type CategoryService interface {
	// CreateCategory creates a new category.
	// Returns ECONFLICT if the slug is already taken.
	CreateCategory(ctx context.Context, category *Category) error

	// FindCategoryByID retrieves a category by ID.
	// Returns ENOTFOUND if the category does not exist.
	FindCategoryByID(ctx context.Context, id string) (*Category, error)

	// FindCategories retrieves categories matching the filter,
	// ordered by name.
	FindCategories(ctx context.Context, filter CategoryFilter) ([]*Category, error)
}

// CategoryFilter represents a filter for FindCategories.
type CategoryFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	Slug *string `json:"slug"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
