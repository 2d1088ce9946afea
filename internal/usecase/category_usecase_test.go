package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
	"github.com/Nebur23/bizsense-ai/internal/usecase/mocks"
)

func TestCategoryUseCase_ListCategories_CacheMiss(t *testing.T) {
	repo := mocks.NewMockCategoryRepository()
	repo.Seed(&domain.Category{ID: "cat-1", Name: "Sale", Type: domain.CategoryIncome})
	cache := mocks.NewMockCache()

	uc := usecase.NewCategoryUseCase(repo, cache, mocks.NewMockIDGenerator())

	categories, err := uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}

	// The miss populates the cache; a second listing must not hit the store.
	repo.ListFunc = func(ctx context.Context) ([]*domain.Category, error) {
		t.Error("second listing should be served from cache")
		return nil, nil
	}

	categories, err = uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Sale" {
		t.Error("cached listing should match the stored categories")
	}
}

func TestCategoryUseCase_ListCategories_CacheUnavailable(t *testing.T) {
	repo := mocks.NewMockCategoryRepository()
	repo.Seed(&domain.Category{ID: "cat-1", Name: "Sale", Type: domain.CategoryIncome})

	cache := mocks.NewMockCache()
	cache.GetFunc = func(ctx context.Context, key string) (string, error) {
		return "", errors.New("connection refused")
	}
	cache.SetFunc = func(ctx context.Context, key, value string, ttl time.Duration) error {
		return nil
	}

	uc := usecase.NewCategoryUseCase(repo, cache, mocks.NewMockIDGenerator())

	categories, err := uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("cache failures must not surface: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
}

func TestCategoryUseCase_ListCategories_NilCache(t *testing.T) {
	repo := mocks.NewMockCategoryRepository()
	repo.Seed(&domain.Category{ID: "cat-1", Name: "Sale", Type: domain.CategoryIncome})

	uc := usecase.NewCategoryUseCase(repo, nil, mocks.NewMockIDGenerator())

	categories, err := uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
}

func TestCategoryUseCase_SeedCategories(t *testing.T) {
	repo := mocks.NewMockCategoryRepository()
	cache := mocks.NewMockCache()
	_ = cache.Set(context.Background(), "categories", "stale", 0)

	uc := usecase.NewCategoryUseCase(repo, cache, mocks.NewMockIDGenerator())

	if err := uc.SeedCategories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	categories, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != len(domain.TransactionTypes()) {
		t.Errorf("expected one category per transaction type, got %d", len(categories))
	}

	// Seeding invalidates the cached listing.
	if cached, _ := cache.Get(context.Background(), "categories"); cached != "" {
		t.Error("seed should invalidate the cache")
	}
}
