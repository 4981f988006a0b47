package main

import (
	"fmt"

	"github.com/rferraz/newsimport"
)

// CategoriesAddCmd creates a category.
type CategoriesAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

// Run executes the categories add command.
func (c *CategoriesAddCmd) Run(deps *Dependencies) error {
	category := &newsimport.Category{Name: c.Name}

	if err := deps.Categories.CreateCategory(deps.Ctx, category); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added category %q (%s)\n", category.Name, category.ID)
	return nil
}

// CategoriesListCmd lists categories.
type CategoriesListCmd struct{}

// Run executes the categories list command.
func (c *CategoriesListCmd) Run(deps *Dependencies) error {
	categories, err := deps.Categories.FindCategories(deps.Ctx, newsimport.CategoryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found. Use 'newsimport categories add' to create one.")
		return nil
	}

	for _, cat := range categories {
		fmt.Fprintf(deps.Stdout, "%s  %s  (%s)\n", cat.ID, cat.Name, cat.Slug)
	}

	return nil
}
