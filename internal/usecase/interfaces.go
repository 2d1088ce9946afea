package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nebur23/bizsense-ai/internal/domain"
)

// Identity carries the resolved caller. It is passed explicitly into every
// mutating use case so the engines stay independent of session plumbing.
type Identity struct {
	UserID     string
	BusinessID string
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, tx Transaction, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByName(ctx context.Context, businessID, name string) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	IncrementBalance(ctx context.Context, tx Transaction, id string, delta decimal.Decimal, updatedAt time.Time) error
	ClearDefault(ctx context.Context, tx Transaction, businessID string, updatedAt time.Time) error
	SetDefault(ctx context.Context, tx Transaction, businessID, id string, updatedAt time.Time) error
	CountByBusiness(ctx context.Context, businessID string) (int64, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Account, error)
}

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, transaction *domain.Transaction) error
	GetByID(ctx context.Context, businessID, id string) (*domain.Transaction, error)
	ListByBusiness(ctx context.Context, businessID string, filter TransactionFilter) ([]*domain.Transaction, error)
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Type   *domain.TransactionType
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// MovementRepository defines data access for account movements.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.AccountTransaction) error
	ListByTransaction(ctx context.Context, transactionID string) ([]*domain.AccountTransaction, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.AccountHistoryEntry, error)
}

// CategoryRepository defines data access for the static category table.
type CategoryRepository interface {
	SeedDefaults(ctx context.Context, categories []domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	GetByID(ctx context.Context, businessID, id string) (*domain.Customer, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetBusiness(ctx context.Context, tx Transaction, userID, businessID string, updatedAt time.Time) error
}

// BusinessRepository defines data access for businesses.
type BusinessRepository interface {
	Create(ctx context.Context, tx Transaction, business *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}

// ReportRepository defines aggregate queries for dashboards and checks.
type ReportRepository interface {
	Cashflow(ctx context.Context, businessID string, from, to time.Time) ([]domain.CashflowPoint, error)
	BalanceDrifts(ctx context.Context) ([]domain.BalanceDrift, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
