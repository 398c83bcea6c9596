package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

type categoryFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	Name          string             `yaml:"name"`
	Limit         int                `yaml:"limit"`
	Subcategories []subcategoryEntry `yaml:"subcategories"`
}

type subcategoryEntry struct {
	Name  string `yaml:"name"`
	Limit int    `yaml:"limit"`
}

// LoadCategories reads the category config file and returns the categories in
// declared order. Order matters: allocation walks the categories exactly as
// the officers listed them.
func LoadCategories(path string) ([]domain.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadConfig, err)
	}

	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadConfig, err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", domain.ErrInvalidCategoryConfig)
	}

	seen := make(map[string]bool)
	categories := make([]domain.Category, 0, len(file.Categories))
	for _, entry := range file.Categories {
		category, err := entry.toDomain(seen)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// toDomain validates one entry. Every bucket name, category or subcategory,
// must be unique across the whole file because the ledger keys on it.
func (e categoryEntry) toDomain(seen map[string]bool) (domain.Category, error) {
	if e.Name == "" {
		return domain.Category{}, fmt.Errorf("%w: category with empty name", domain.ErrInvalidCategoryConfig)
	}
	if seen[e.Name] {
		return domain.Category{}, fmt.Errorf("%w: duplicate bucket name %q", domain.ErrInvalidCategoryConfig, e.Name)
	}
	seen[e.Name] = true

	if len(e.Subcategories) > 0 && e.Limit != 0 {
		return domain.Category{}, fmt.Errorf("%w: category %q has both a limit and subcategories", domain.ErrInvalidCategoryConfig, e.Name)
	}
	if e.Limit < 0 {
		return domain.Category{}, fmt.Errorf("%w: category %q has a negative limit", domain.ErrInvalidCategoryConfig, e.Name)
	}

	category := domain.Category{Name: e.Name, Limit: e.Limit}
	for _, sub := range e.Subcategories {
		if sub.Name == "" {
			return domain.Category{}, fmt.Errorf("%w: category %q has a subcategory with empty name", domain.ErrInvalidCategoryConfig, e.Name)
		}
		if seen[sub.Name] {
			return domain.Category{}, fmt.Errorf("%w: duplicate bucket name %q", domain.ErrInvalidCategoryConfig, sub.Name)
		}
		seen[sub.Name] = true
		if sub.Limit < 0 {
			return domain.Category{}, fmt.Errorf("%w: subcategory %q has a negative limit", domain.ErrInvalidCategoryConfig, sub.Name)
		}
		category.Subcategories = append(category.Subcategories, domain.Subcategory{Name: sub.Name, Limit: sub.Limit})
	}
	return category, nil
}
