package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

func writeCategoryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadCategories tests category config parsing and validation
func TestLoadCategories(t *testing.T) {
	t.Run("loads categories in declared order", func(t *testing.T) {
		path := writeCategoryFile(t, `
categories:
  - name: "Insignias [Red]"
    limit: 28
  - name: "T2 Stones"
    subcategories:
      - name: "T2 Earth Stone"
        limit: 3
      - name: "T2 Fire Stone"
        limit: 2
  - name: "Gold Thread"
    limit: 10
`)

		categories, err := LoadCategories(path)

		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Insignias [Red]", categories[0].Name)
		assert.Equal(t, 28, categories[0].Limit)
		assert.True(t, categories[0].IsFlat())
		assert.Equal(t, "T2 Stones", categories[1].Name)
		assert.False(t, categories[1].IsFlat())
		require.Len(t, categories[1].Subcategories, 2)
		assert.Equal(t, domain.Subcategory{Name: "T2 Earth Stone", Limit: 3}, categories[1].Subcategories[0])
		assert.Equal(t, "Gold Thread", categories[2].Name)
	})

	t.Run("allows a zero limit", func(t *testing.T) {
		path := writeCategoryFile(t, `
categories:
  - name: "Out Of Stock"
    limit: 0
`)

		categories, err := LoadCategories(path)

		require.NoError(t, err)
		assert.Equal(t, 0, categories[0].Limit)
	})

	t.Run("returns error when file is missing", func(t *testing.T) {
		_, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToReadConfig)
	})

	t.Run("returns error for malformed yaml", func(t *testing.T) {
		path := writeCategoryFile(t, "categories: [unbalanced")

		_, err := LoadCategories(path)

		assert.Error(t, err)
	})

	t.Run("returns error for empty category list", func(t *testing.T) {
		path := writeCategoryFile(t, "categories: []")

		_, err := LoadCategories(path)

		assert.ErrorIs(t, err, domain.ErrInvalidCategoryConfig)
	})

	t.Run("returns error for empty category name", func(t *testing.T) {
		path := writeCategoryFile(t, `
categories:
  - name: ""
    limit: 5
`)

		_, err := LoadCategories(path)

		assert.ErrorIs(t, err, domain.ErrInvalidCategoryConfig)
	})

	t.Run("returns error for duplicate bucket names", func(t *testing.T) {
		path := writeCategoryFile(t, `
categories:
  - name: "Gold Thread"
    limit: 5
  - name: "Stones"
    subcategories:
      - name: "Gold Thread"
        limit: 2
`)

		_, err := LoadCategories(path)

		assert.ErrorIs(t, err, domain.ErrInvalidCategoryConfig)
		assert.Contains(t, err.Error(), "Gold Thread")
	})

	t.Run("returns error when category mixes limit and subcategories", func(t *testing.T) {
		path := writeCategoryFile(t, `
categories:
  - name: "Stones"
    limit: 4
    subcategories:
      - name: "Earth Stone"
        limit: 2
`)

		_, err := LoadCategories(path)

		assert.ErrorIs(t, err, domain.ErrInvalidCategoryConfig)
	})

	t.Run("returns error for negative limits", func(t *testing.T) {
		path := writeCategoryFile(t, `
categories:
  - name: "Gold Thread"
    limit: -1
`)

		_, err := LoadCategories(path)

		assert.ErrorIs(t, err, domain.ErrInvalidCategoryConfig)
	})
}
