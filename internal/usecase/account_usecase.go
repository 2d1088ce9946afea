package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nebur23/bizsense-ai/internal/domain"
)

// AccountUseCase handles account management for a business.
type AccountUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	movementRepo MovementRepository
	idGen        IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	idGen IDGenerator,
) *AccountUseCase {
	return &AccountUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		idGen:        idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name          string
	Type          domain.AccountType
	Provider      string
	AccountNumber string
	Balance       decimal.Decimal
	IsDefault     bool
	Currency      string
}

// CreateAccount creates a new account for the caller's business. Account
// names are unique per business. When the new account is marked default (or
// is the first account of the business), the default flag on every other
// account is cleared in the same store transaction.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, caller Identity, input CreateAccountInput) (*domain.Account, error) {
	if caller.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	if caller.BusinessID == "" {
		return nil, domain.ErrNoBusiness
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:            uc.idGen.Generate(),
		BusinessID:    caller.BusinessID,
		Name:          strings.TrimSpace(input.Name),
		Type:          input.Type,
		Provider:      input.Provider,
		AccountNumber: input.AccountNumber,
		Balance:       input.Balance,
		Currency:      currency,
		IsDefault:     input.IsDefault,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.accountRepo.GetByName(ctx, caller.BusinessID, account.Name)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateAccountName
	}

	count, err := uc.accountRepo.CountByBusiness(ctx, caller.BusinessID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		// The first account of a business is always the default.
		account.IsDefault = true
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if account.IsDefault {
		if err := uc.accountRepo.ClearDefault(ctx, tx, caller.BusinessID, now); err != nil {
			return nil, err
		}
	}

	if err := uc.accountRepo.Create(ctx, tx, account); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}

// SetDefaultAccount marks one account as the business default. The clear and
// set steps run inside a single store transaction so the business never rests
// with zero or two defaults.
func (uc *AccountUseCase) SetDefaultAccount(ctx context.Context, caller Identity, accountID string) (*domain.Account, error) {
	if caller.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	if caller.BusinessID == "" {
		return nil, domain.ErrNoBusiness
	}

	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account.BusinessID != caller.BusinessID {
		return nil, domain.ErrAccountNotFound
	}

	now := time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.accountRepo.ClearDefault(ctx, tx, caller.BusinessID, now); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.SetDefault(ctx, tx, caller.BusinessID, accountID, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	account.IsDefault = true
	account.UpdatedAt = now

	return account, nil
}

// ListAccounts lists the caller's accounts, newest first, with transaction
// counts for the dashboard cards.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, caller Identity) ([]*domain.Account, error) {
	if caller.BusinessID == "" {
		return nil, domain.ErrNoBusiness
	}

	return uc.accountRepo.ListByBusiness(ctx, caller.BusinessID)
}

// AccountHistoryInput represents input for the account detail page.
type AccountHistoryInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// AccountHistory holds an account plus a page of its movement history.
type AccountHistory struct {
	Account *domain.Account
	Entries []*domain.AccountHistoryEntry
}

// GetAccountHistory returns an account with its movements joined to their
// transactions, newest first.
func (uc *AccountUseCase) GetAccountHistory(ctx context.Context, caller Identity, input AccountHistoryInput) (*AccountHistory, error) {
	if caller.BusinessID == "" {
		return nil, domain.ErrNoBusiness
	}

	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if account.BusinessID != caller.BusinessID {
		return nil, domain.ErrAccountNotFound
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	entries, err := uc.movementRepo.ListByAccount(ctx, input.AccountID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &AccountHistory{Account: account, Entries: entries}, nil
}
