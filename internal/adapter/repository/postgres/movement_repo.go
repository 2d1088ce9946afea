package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// MovementRepository implements usecase.MovementRepository.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// Create inserts a movement row inside the given store transaction.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.AccountTransaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO account_transactions (id, account_id, transaction_id, amount,
			is_transfer_source, is_transfer_destination, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		movement.ID,
		movement.AccountID,
		movement.TransactionID,
		decimalToNumeric(movement.Amount),
		movement.IsTransferSource,
		movement.IsTransferDestination,
		timeToPgTimestamptz(movement.CreatedAt),
	)

	return err
}

// ListByTransaction returns the movements of one transaction.
func (r *MovementRepository) ListByTransaction(ctx context.Context, transactionID string) ([]*domain.AccountTransaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, account_id, transaction_id, amount,
			is_transfer_source, is_transfer_destination, created_at
		FROM account_transactions
		WHERE transaction_id = $1
		ORDER BY created_at`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*domain.AccountTransaction
	for rows.Next() {
		movement, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	return movements, rows.Err()
}

// ListByAccount returns a page of an account's movements joined with their
// transactions and category names, newest first.
func (r *MovementRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.AccountHistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT at.id, at.account_id, at.transaction_id, at.amount,
			at.is_transfer_source, at.is_transfer_destination, at.created_at,
			t.id, t.business_id, t.type, t.amount, t.description, t.date,
			t.category_id, t.customer_id, t.created_at,
			COALESCE(c.name, '')
		FROM account_transactions at
		JOIN transactions t ON t.id = at.transaction_id
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE at.account_id = $1
		ORDER BY t.date DESC, at.created_at DESC
		LIMIT $2 OFFSET $3`, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.AccountHistoryEntry
	for rows.Next() {
		var (
			entry                  domain.AccountHistoryEntry
			mvAmount, txAmount     pgtype.Numeric
			txType                 string
			categoryID, customerID pgtype.Text
			mvCreated, txDate      pgtype.Timestamptz
			txCreated              pgtype.Timestamptz
		)

		err := rows.Scan(
			&entry.Movement.ID,
			&entry.Movement.AccountID,
			&entry.Movement.TransactionID,
			&mvAmount,
			&entry.Movement.IsTransferSource,
			&entry.Movement.IsTransferDestination,
			&mvCreated,
			&entry.Transaction.ID,
			&entry.Transaction.BusinessID,
			&txType,
			&txAmount,
			&entry.Transaction.Description,
			&txDate,
			&categoryID,
			&customerID,
			&txCreated,
			&entry.CategoryName,
		)
		if err != nil {
			return nil, err
		}

		entry.Movement.Amount = numericToDecimal(mvAmount)
		entry.Movement.CreatedAt = mvCreated.Time
		entry.Transaction.Type = domain.TransactionType(txType)
		entry.Transaction.Amount = numericToDecimal(txAmount)
		entry.Transaction.Date = txDate.Time
		entry.Transaction.CategoryID = textPtr(categoryID)
		entry.Transaction.CustomerID = textPtr(customerID)
		entry.Transaction.CreatedAt = txCreated.Time

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

func scanMovement(row rowScanner) (*domain.AccountTransaction, error) {
	var (
		movement  domain.AccountTransaction
		amount    pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&movement.ID,
		&movement.AccountID,
		&movement.TransactionID,
		&amount,
		&movement.IsTransferSource,
		&movement.IsTransferDestination,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	movement.Amount = numericToDecimal(amount)
	movement.CreatedAt = createdAt.Time

	return &movement, nil
}
