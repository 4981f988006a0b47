package sqlite_test

import (
	"context"
	"testing"

	"github.com/rferraz/newsimport"
	"github.com/rferraz/newsimport/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Parallel()

	t.Run("derives slug from name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCategoryService(db)
		ctx := context.Background()

		category := &newsimport.Category{Name: "Tecnologia"}
		require.NoError(t, svc.CreateCategory(ctx, category))

		assert.NotEmpty(t, category.ID)
		assert.Equal(t, "tecnologia", category.Slug)
	})

	t.Run("returns ECONFLICT for duplicate slug", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCategoryService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateCategory(ctx, &newsimport.Category{Name: "Economia"}))

		err := svc.CreateCategory(ctx, &newsimport.Category{Name: "Economia"})
		require.Error(t, err)
		assert.Equal(t, newsimport.ECONFLICT, newsimport.ErrorCode(err))
	})

	t.Run("returns error for missing name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCategoryService(db)

		err := svc.CreateCategory(context.Background(), &newsimport.Category{})
		assert.Equal(t, newsimport.EINVALID, newsimport.ErrorCode(err))
	})
}

func TestCategoryService_FindCategories(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewCategoryService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, &newsimport.Category{Name: "Política"}))
	require.NoError(t, svc.CreateCategory(ctx, &newsimport.Category{Name: "Esportes"}))

	all, err := svc.FindCategories(ctx, newsimport.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Esportes", all[0].Name)

	slug := "politica"
	bySlug, err := svc.FindCategories(ctx, newsimport.CategoryFilter{Slug: &slug})
	require.NoError(t, err)
	require.Len(t, bySlug, 1)
	assert.Equal(t, "Política", bySlug[0].Name)

	found, err := svc.FindCategoryByID(ctx, bySlug[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Política", found.Name)

	_, err = svc.FindCategoryByID(ctx, "missing")
	assert.Equal(t, newsimport.ENOTFOUND, newsimport.ErrorCode(err))
}
