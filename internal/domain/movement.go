package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTransaction is one signed movement recorded against an account for a
// transaction. Movements are append-only and never exist without their
// transaction.
type AccountTransaction struct {
	ID                    string
	AccountID             string
	TransactionID         string
	Amount                decimal.Decimal
	IsTransferSource      bool
	IsTransferDestination bool
	CreatedAt             time.Time
}

// Allocation is one requested {account, amount} pair inside a posting request.
// Amount is always positive; the sign is derived from the transaction type.
type Allocation struct {
	AccountID             string
	Amount                decimal.Decimal
	IsTransferSource      bool
	IsTransferDestination bool
}

// Validate checks the per-allocation shape rules against the posting type.
func (a *Allocation) Validate(txType TransactionType) error {
	if a.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if txType == TypeTransfer {
		// Exactly one side must be set.
		if a.IsTransferSource == a.IsTransferDestination {
			return ErrMalformedTransfer
		}

		return nil
	}

	if a.IsTransferSource || a.IsTransferDestination {
		return ErrTransferFlagsForbidden
	}

	return nil
}

// BalanceDelta computes the signed balance change this allocation applies to
// its account under the given transaction type.
func (a *Allocation) BalanceDelta(txType TransactionType) (decimal.Decimal, error) {
	if txType == TypeTransfer {
		if a.IsTransferSource {
			return a.Amount.Neg(), nil
		}

		if a.IsTransferDestination {
			return a.Amount, nil
		}

		return decimal.Zero, ErrMalformedTransfer
	}

	class, err := txType.Classify()
	if err != nil {
		return decimal.Zero, err
	}

	switch class {
	case CategoryIncome:
		return a.Amount, nil
	case CategoryExpense:
		return a.Amount.Neg(), nil
	default:
		return decimal.Zero, ErrUnknownTransactionType
	}
}

// ValidateTransferShape checks the transfer-wide invariants: exactly two
// allocations, one source and one destination, equal amounts, distinct
// accounts.
func ValidateTransferShape(allocations []Allocation) error {
	if len(allocations) != 2 {
		return ErrMalformedTransfer
	}

	var source, destination *Allocation

	for i := range allocations {
		a := &allocations[i]
		switch {
		case a.IsTransferSource && !a.IsTransferDestination:
			if source != nil {
				return ErrMalformedTransfer
			}
			source = a
		case a.IsTransferDestination && !a.IsTransferSource:
			if destination != nil {
				return ErrMalformedTransfer
			}
			destination = a
		default:
			return ErrMalformedTransfer
		}
	}

	if source == nil || destination == nil {
		return ErrMalformedTransfer
	}

	if !source.Amount.Equal(destination.Amount) {
		return ErrMalformedTransfer
	}

	if source.AccountID == destination.AccountID {
		return ErrTransferSameAccount
	}

	return nil
}
