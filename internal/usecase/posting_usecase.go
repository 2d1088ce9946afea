package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/metrics"
)

// PostingUseCase is the ledger posting engine: it validates a transaction
// request and atomically persists the transaction, one movement per
// allocation, and the updated account balances.
type PostingUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	movementRepo    MovementRepository
	categoryRepo    CategoryRepository
	customerRepo    CustomerRepository
	idGen           IDGenerator
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewPostingUseCase creates a new PostingUseCase.
func NewPostingUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	movementRepo MovementRepository,
	categoryRepo CategoryRepository,
	customerRepo CustomerRepository,
	idGen IDGenerator,
	retrier Retrier,
	m *metrics.Metrics,
) *PostingUseCase {
	return &PostingUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		movementRepo:    movementRepo,
		categoryRepo:    categoryRepo,
		customerRepo:    customerRepo,
		idGen:           idGen,
		retrier:         retrier,
		metrics:         m,
	}
}

// PostTransactionInput represents one posting request.
type PostTransactionInput struct {
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CategoryID  *string
	CustomerID  *string
	Allocations []domain.Allocation
}

// Post validates the request and persists it as a single unit of work. All
// validation happens before the first write; any failure afterwards rolls the
// whole posting back.
func (uc *PostingUseCase) Post(ctx context.Context, caller Identity, input PostTransactionInput) (*domain.Transaction, error) {
	if caller.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	if caller.BusinessID == "" {
		return nil, domain.ErrNoBusiness
	}

	now := time.Now().UTC()

	date := input.Date
	if date.IsZero() {
		date = now
	}

	transaction := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		BusinessID:  caller.BusinessID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        date,
		CategoryID:  input.CategoryID,
		CustomerID:  input.CustomerID,
		CreatedAt:   now,
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if len(input.Allocations) == 0 {
		return nil, domain.ErrNoAllocations
	}

	for i := range input.Allocations {
		if err := input.Allocations[i].Validate(input.Type); err != nil {
			return nil, err
		}
	}

	if input.Type == domain.TypeTransfer {
		if err := domain.ValidateTransferShape(input.Allocations); err != nil {
			return nil, err
		}
	}

	if err := uc.checkReferences(ctx, caller, input); err != nil {
		return nil, err
	}

	err := uc.retrier.Retry(ctx, func() error {
		return uc.persist(ctx, caller, transaction, input.Allocations, now)
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.PostingErrors.WithLabelValues("persist").Inc()
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsPosted.WithLabelValues(string(input.Type)).Inc()
		uc.metrics.PostingAmount.Observe(input.Amount.InexactFloat64())
		uc.metrics.PostingDuration.Observe(time.Since(now).Seconds())
	}

	return transaction, nil
}

// checkReferences validates the optional category and customer references
// before any write happens.
func (uc *PostingUseCase) checkReferences(ctx context.Context, caller Identity, input PostTransactionInput) error {
	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return err
		}
	}

	if input.CustomerID != nil {
		if _, err := uc.customerRepo.GetByID(ctx, caller.BusinessID, *input.CustomerID); err != nil {
			return err
		}
	}

	return nil
}

// persist runs the atomic write: transaction row, movement rows, balance
// increments. Balances move by increment-in-place so concurrent postings
// against the same account accumulate correctly.
func (uc *PostingUseCase) persist(
	ctx context.Context,
	caller Identity,
	transaction *domain.Transaction,
	allocations []domain.Allocation,
	now time.Time,
) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Lock accounts in sorted id order to avoid deadlocks between
	// concurrent postings touching the same accounts.
	accountIDs := collectAccountIDs(allocations)
	sort.Strings(accountIDs)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return err
	}

	if len(accounts) != len(accountIDs) {
		return domain.ErrAccountNotFound
	}

	for _, account := range accounts {
		if account.BusinessID != caller.BusinessID {
			// Do not reveal other tenants' account ids.
			return domain.ErrAccountNotFound
		}
	}

	if err := uc.transactionRepo.Create(ctx, tx, transaction); err != nil {
		return err
	}

	for _, allocation := range allocations {
		delta, err := allocation.BalanceDelta(transaction.Type)
		if err != nil {
			return err
		}

		movement := &domain.AccountTransaction{
			ID:                    uc.idGen.Generate(),
			AccountID:             allocation.AccountID,
			TransactionID:         transaction.ID,
			Amount:                delta,
			IsTransferSource:      allocation.IsTransferSource,
			IsTransferDestination: allocation.IsTransferDestination,
			CreatedAt:             now,
		}

		if err := uc.movementRepo.Create(ctx, tx, movement); err != nil {
			return err
		}

		if err := uc.accountRepo.IncrementBalance(ctx, tx, allocation.AccountID, delta, now); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func collectAccountIDs(allocations []domain.Allocation) []string {
	seen := make(map[string]bool, len(allocations))

	var ids []string
	for _, a := range allocations {
		if !seen[a.AccountID] {
			seen[a.AccountID] = true
			ids = append(ids, a.AccountID)
		}
	}

	return ids
}
