package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nebur23/bizsense-ai/internal/domain"
)

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// SeedDefaults inserts the default category table. Rows whose name already
// exists are left untouched so the seed can run on every deploy.
func (r *CategoryRepository) SeedDefaults(ctx context.Context, categories []domain.Category) error {
	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(`
			INSERT INTO categories (id, name, type, description)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING`,
			c.ID, c.Name, string(c.Type), c.Description)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range categories {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var (
		category     domain.Category
		categoryType string
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, type, description
		FROM categories
		WHERE id = $1`, id).
		Scan(&category.ID, &category.Name, &categoryType, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	category.Type = domain.CategoryType(categoryType)

	return &category, nil
}

// List returns every category, income first, then alphabetically.
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, type, description
		FROM categories
		ORDER BY type, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var (
			category     domain.Category
			categoryType string
		)

		if err := rows.Scan(&category.ID, &category.Name, &categoryType, &category.Description); err != nil {
			return nil, err
		}

		category.Type = domain.CategoryType(categoryType)
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}
