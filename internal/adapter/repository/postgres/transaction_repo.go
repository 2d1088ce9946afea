package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a transaction row inside the given store transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO transactions (id, business_id, type, amount, description,
			date, category_id, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		transaction.ID,
		transaction.BusinessID,
		string(transaction.Type),
		decimalToNumeric(transaction.Amount),
		transaction.Description,
		timeToPgTimestamptz(transaction.Date),
		textOrNil(transaction.CategoryID),
		textOrNil(transaction.CustomerID),
		timeToPgTimestamptz(transaction.CreatedAt),
	)

	return err
}

// GetByID retrieves one transaction scoped to a business.
func (r *TransactionRepository) GetByID(ctx context.Context, businessID, id string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, business_id, type, amount, description, date, category_id, customer_id, created_at
		FROM transactions
		WHERE business_id = $1 AND id = $2`, businessID, id)

	transaction, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return transaction, nil
}

// ListByBusiness lists transactions for a business, newest first.
func (r *TransactionRepository) ListByBusiness(ctx context.Context, businessID string, filter usecase.TransactionFilter) ([]*domain.Transaction, error) {
	query := `
		SELECT id, business_id, type, amount, description, date, category_id, customer_id, created_at
		FROM transactions
		WHERE business_id = $1`
	args := []any{businessID}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, timeToPgTimestamptz(*filter.From))
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, timeToPgTimestamptz(*filter.To))
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		transaction            domain.Transaction
		txType                 string
		amount                 pgtype.Numeric
		categoryID, customerID pgtype.Text
		date, createdAt        pgtype.Timestamptz
	)

	err := row.Scan(
		&transaction.ID,
		&transaction.BusinessID,
		&txType,
		&amount,
		&transaction.Description,
		&date,
		&categoryID,
		&customerID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	transaction.Type = domain.TransactionType(txType)
	transaction.Amount = numericToDecimal(amount)
	transaction.Date = date.Time
	transaction.CategoryID = textPtr(categoryID)
	transaction.CustomerID = textPtr(customerID)
	transaction.CreatedAt = createdAt.Time

	return &transaction, nil
}
