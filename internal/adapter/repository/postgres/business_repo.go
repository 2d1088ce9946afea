package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// BusinessRepository implements usecase.BusinessRepository.
type BusinessRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository creates a new BusinessRepository.
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

// Create inserts a business inside the given store transaction.
func (r *BusinessRepository) Create(ctx context.Context, tx usecase.Transaction, business *domain.Business) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO businesses (id, name, type, created_at)
		VALUES ($1, $2, $3, $4)`,
		business.ID, business.Name, business.Type, timeToPgTimestamptz(business.CreatedAt))

	return err
}

// GetByID retrieves a business by ID.
func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	var (
		business  domain.Business
		createdAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, type, created_at
		FROM businesses
		WHERE id = $1`, id).
		Scan(&business.ID, &business.Name, &business.Type, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, err
	}

	business.CreatedAt = createdAt.Time

	return &business, nil
}