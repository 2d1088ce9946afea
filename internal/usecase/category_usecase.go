package usecase

import (
	"context"
	"encoding/json"

	"github.com/Nebur23/bizsense-ai/internal/domain"
)

const categoryCacheKey = "categories"

// CategoryUseCase serves the static category table. The table never changes
// after seeding, so listings go through a read-through cache.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	cache        Cache
	idGen        IDGenerator
}

// NewCategoryUseCase creates a new CategoryUseCase. cache may be nil.
func NewCategoryUseCase(categoryRepo CategoryRepository, cache Cache, idGen IDGenerator) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
		idGen:        idGen,
	}
}

// ListCategories returns the full category table.
func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, categoryCacheKey); err == nil && cached != "" {
			var categories []*domain.Category
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil && len(categories) > 0 {
		if encoded, err := json.Marshal(categories); err == nil {
			// Cache failures are not surfaced; the store remains the source of truth.
			_ = uc.cache.Set(ctx, categoryCacheKey, string(encoded), CategoryCacheTTL)
		}
	}

	return categories, nil
}

// SeedCategories inserts the fixed 21-row table, assigning ids. Safe to run
// repeatedly; existing rows are left untouched.
func (uc *CategoryUseCase) SeedCategories(ctx context.Context) error {
	seed := domain.SeedCategories()
	for i := range seed {
		seed[i].ID = uc.idGen.Generate()
	}

	if err := uc.categoryRepo.SeedDefaults(ctx, seed); err != nil {
		return err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, categoryCacheKey)
	}

	return nil
}
