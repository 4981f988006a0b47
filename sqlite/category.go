package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rferraz/newsimport"
)

// Compile-time interface verification.
var _ newsimport.CategoryService = (*CategoryService)(nil)

// CategoryService implements newsimport.CategoryService using SQLite.
type CategoryService struct {
	db *DB
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(db *DB) *CategoryService {
	return &CategoryService{db: db}
}

// CreateCategory creates a new category. The slug is derived from the name
// when not supplied.
func (s *CategoryService) CreateCategory(ctx context.Context, category *newsimport.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	category.ID = uuid.New().String()
	category.CreatedAt = time.Now().UTC()
	if category.Slug == "" {
		category.Slug = categorySlug(category.Name)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, slug, created_at)
		VALUES (?, ?, ?, ?)
	`, category.ID, category.Name, category.Slug, category.CreatedAt.Format(time.RFC3339))

	if isUniqueConstraint(err) {
		return newsimport.Errorf(newsimport.ECONFLICT, "category slug %q already exists", category.Slug)
	}
	return err
}

// categorySlug derives a stable slug from the category name. Unlike
// article slugs, category slugs carry no uniqueness suffix: two categories
// with the same name are a conflict, not two records.
func categorySlug(name string) string {
	slug := newsimport.Slugify(name, time.Unix(0, 0))
	return strings.TrimSuffix(slug, "-0")
}

// FindCategoryByID retrieves a category by ID.
func (s *CategoryService) FindCategoryByID(ctx context.Context, id string) (*newsimport.Category, error) {
	var category newsimport.Category
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, slug, created_at FROM categories WHERE id = ?
	`, id).Scan(&category.ID, &category.Name, &category.Slug, &createdAt)

	if err == sql.ErrNoRows {
		return nil, newsimport.Errorf(newsimport.ENOTFOUND, "category not found")
	}
	if err != nil {
		return nil, err
	}

	if category.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &category, nil
}

// FindCategories retrieves categories matching the filter, ordered by name.
func (s *CategoryService) FindCategories(ctx context.Context, filter newsimport.CategoryFilter) ([]*newsimport.Category, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, slug, created_at FROM categories WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*newsimport.Category
	for rows.Next() {
		var category newsimport.Category
		var createdAt string

		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &createdAt); err != nil {
			return nil, err
		}
		if category.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		categories = append(categories, &category)
	}

	return categories, rows.Err()
}
