package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, business_id, name, type, provider, account_number,
	balance, currency, is_default, created_at, updated_at`

// Create inserts a new account inside the given transaction.
func (r *AccountRepository) Create(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	pgxTx := tx.(*Tx).PgxTx()

	// The opening balance is frozen at creation; the consistency check
	// reconstructs balances from it.
	_, err := pgxTx.Exec(ctx, `
		INSERT INTO accounts (id, business_id, name, type, provider, account_number,
			balance, opening_balance, currency, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8, $9, $10, $11)`,
		account.ID,
		account.BusinessID,
		account.Name,
		string(account.Type),
		account.Provider,
		account.AccountNumber,
		decimalToNumeric(account.Balance),
		account.Currency,
		account.IsDefault,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateAccountName
		}
		return err
	}

	return nil
}

// GetByID retrieves an account by ID with its transaction count.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`,
			(SELECT COUNT(*) FROM account_transactions at WHERE at.account_id = a.id)
		FROM accounts a
		WHERE id = $1`, id)

	account, err := scanAccountWithCount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// GetByName retrieves an account by business and name.
func (r *AccountRepository) GetByName(ctx context.Context, businessID, name string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts a
		WHERE business_id = $1 AND name = $2`, businessID, name)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// GetByIDsForUpdate retrieves multiple accounts with FOR UPDATE locks. ids
// must be sorted by the caller so concurrent postings lock in the same order.
func (r *AccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts a
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// IncrementBalance moves an account balance by delta. The increment happens
// in SQL so concurrent committed postings accumulate instead of overwriting.
func (r *AccountRepository) IncrementBalance(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE accounts
		SET balance = balance + $2, updated_at = $3
		WHERE id = $1`,
		id, decimalToNumeric(delta), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// ClearDefault clears the default flag on every account of a business.
func (r *AccountRepository) ClearDefault(ctx context.Context, tx usecase.Transaction, businessID string, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		UPDATE accounts
		SET is_default = FALSE, updated_at = $2
		WHERE business_id = $1 AND is_default`,
		businessID, timeToPgTimestamptz(updatedAt))

	return err
}

// SetDefault marks one account of a business as the default.
func (r *AccountRepository) SetDefault(ctx context.Context, tx usecase.Transaction, businessID, id string, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE accounts
		SET is_default = TRUE, updated_at = $3
		WHERE business_id = $1 AND id = $2`,
		businessID, id, timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// CountByBusiness counts the accounts of a business.
func (r *AccountRepository) CountByBusiness(ctx context.Context, businessID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE business_id = $1`, businessID).Scan(&count)

	return count, err
}

// ListByBusiness lists the accounts of a business with transaction counts,
// newest first.
func (r *AccountRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`,
			(SELECT COUNT(*) FROM account_transactions at WHERE at.account_id = a.id)
		FROM accounts a
		WHERE business_id = $1
		ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccountWithCount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var (
		account              domain.Account
		accountType          string
		balance              pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.BusinessID,
		&account.Name,
		&accountType,
		&account.Provider,
		&account.AccountNumber,
		&balance,
		&account.Currency,
		&account.IsDefault,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Type = domain.AccountType(accountType)
	account.Balance = numericToDecimal(balance)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

func scanAccountWithCount(row rowScanner) (*domain.Account, error) {
	var (
		account              domain.Account
		accountType          string
		balance              pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.BusinessID,
		&account.Name,
		&accountType,
		&account.Provider,
		&account.AccountNumber,
		&balance,
		&account.Currency,
		&account.IsDefault,
		&createdAt,
		&updatedAt,
		&account.TransactionCount,
	)
	if err != nil {
		return nil, err
	}

	account.Type = domain.AccountType(accountType)
	account.Balance = numericToDecimal(balance)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}
