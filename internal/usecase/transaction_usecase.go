package usecase

import (
	"context"

	"github.com/Nebur23/bizsense-ai/internal/domain"
)

// TransactionUseCase serves transaction queries for the dashboard.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
	movementRepo    MovementRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository, movementRepo MovementRepository) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		movementRepo:    movementRepo,
	}
}

// ListTransactions lists the caller's transactions, newest first.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, caller Identity, filter TransactionFilter) ([]*domain.Transaction, error) {
	if caller.BusinessID == "" {
		return nil, domain.ErrNoBusiness
	}

	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)

	return uc.transactionRepo.ListByBusiness(ctx, caller.BusinessID, filter)
}

// TransactionDetail holds a transaction with its movements.
type TransactionDetail struct {
	Transaction *domain.Transaction
	Movements   []*domain.AccountTransaction
}

// GetTransaction returns one transaction with its movements.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, caller Identity, id string) (*TransactionDetail, error) {
	if caller.BusinessID == "" {
		return nil, domain.ErrNoBusiness
	}

	transaction, err := uc.transactionRepo.GetByID(ctx, caller.BusinessID, id)
	if err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.ListByTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TransactionDetail{Transaction: transaction, Movements: movements}, nil
}
