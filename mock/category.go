package mock

import (
	"context"

	"github.com/rferraz/newsimport"
)

var _ newsimport.CategoryService = (*CategoryService)(nil)

// CategoryService is a mock implementation of newsimport.CategoryService.
type CategoryService struct {
	CreateCategoryFn   func(ctx context.Context, category *newsimport.Category) error
	FindCategoryByIDFn func(ctx context.Context, id string) (*newsimport.Category, error)
	FindCategoriesFn   func(ctx context.Context, filter newsimport.CategoryFilter) ([]*newsimport.Category, error)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *newsimport.Category) error {
	return s.CreateCategoryFn(ctx, category)
}

func (s *CategoryService) FindCategoryByID(ctx context.Context, id string) (*newsimport.Category, error) {
	return s.FindCategoryByIDFn(ctx, id)
}

func (s *CategoryService) FindCategories(ctx context.Context, filter newsimport.CategoryFilter) ([]*newsimport.Category, error) {
	return s.FindCategoriesFn(ctx, filter)
}
