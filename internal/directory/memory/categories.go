package memory

import (
	"context"
	"sync"

	"task-planner/internal/model"
)

// implCategoryStore is an in-memory CategoryStore. Enumeration order is the
// insertion order of the seed, which extraction relies on when resolving
// verbatim category mentions.
type implCategoryStore struct {
	mu         sync.RWMutex
	categories []model.Category
}

// NewCategoryStore creates a category store seeded with the given
// categories.
func NewCategoryStore(categories []model.Category) *implCategoryStore {
	seeded := make([]model.Category, len(categories))
	copy(seeded, categories)
	return &implCategoryStore{categories: seeded}
}

// DefaultCategories is the stock category set used when no seed is
// configured.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "cat-meetings", Name: "Meetings"},
		{ID: "cat-development", Name: "Development"},
		{ID: "cat-design", Name: "Design"},
		{ID: "cat-testing", Name: "Testing"},
		{ID: "cat-documentation", Name: "Documentation"},
	}
}

func (s *implCategoryStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
