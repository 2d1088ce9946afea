package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enumerates every kind of posting the ledger accepts.
type TransactionType string

const (
	TypeSale                TransactionType = "SALE"
	TypePurchase            TransactionType = "PURCHASE"
	TypeExpense             TransactionType = "EXPENSE"
	TypeRefund              TransactionType = "REFUND"
	TypeTransfer            TransactionType = "TRANSFER"
	TypeLoanDisbursement    TransactionType = "LOAN_DISBURSEMENT"
	TypeLoanRepayment       TransactionType = "LOAN_REPAYMENT"
	TypeSubscriptionPayment TransactionType = "SUBSCRIPTION_PAYMENT"
	TypeInvestmentInflow    TransactionType = "INVESTMENT_INFLOW"
	TypeInvestmentOutflow   TransactionType = "INVESTMENT_OUTFLOW"
	TypeTaxPayment          TransactionType = "TAX_PAYMENT"
	TypeSalaryPayment       TransactionType = "SALARY_PAYMENT"
	TypeCommission          TransactionType = "COMMISSION"
	TypeDonation            TransactionType = "DONATION"
	TypeGrantReceipt        TransactionType = "GRANT_RECEIPT"
	TypeUtilityPayment      TransactionType = "UTILITY_PAYMENT"
	TypeMaintenanceExpense  TransactionType = "MAINTENANCE_EXPENSE"
	TypeInsurancePayment    TransactionType = "INSURANCE_PAYMENT"
	TypeReimbursement       TransactionType = "REIMBURSEMENT"
	TypePenaltyOrFine       TransactionType = "PENALTY_OR_FINE"
	TypeDepreciation        TransactionType = "DEPRECIATION"
)

// classification maps every transaction type to its category classification.
// The table is exhaustive over the enumeration; an unlisted type is invalid,
// never sign-guessed from its name.
var classification = map[TransactionType]CategoryType{
	TypeSale:                CategoryIncome,
	TypePurchase:            CategoryExpense,
	TypeExpense:             CategoryExpense,
	TypeRefund:              CategoryIncome,
	TypeTransfer:            CategoryTransfer,
	TypeLoanDisbursement:    CategoryIncome,
	TypeLoanRepayment:       CategoryExpense,
	TypeSubscriptionPayment: CategoryExpense,
	TypeInvestmentInflow:    CategoryIncome,
	TypeInvestmentOutflow:   CategoryExpense,
	TypeTaxPayment:          CategoryExpense,
	TypeSalaryPayment:       CategoryExpense,
	TypeCommission:          CategoryExpense,
	TypeDonation:            CategoryIncome,
	TypeGrantReceipt:        CategoryIncome,
	TypeUtilityPayment:      CategoryExpense,
	TypeMaintenanceExpense:  CategoryExpense,
	TypeInsurancePayment:    CategoryExpense,
	TypeReimbursement:       CategoryExpense,
	TypePenaltyOrFine:       CategoryExpense,
	// Non-cash on paper, but the ledger records it as an outflow.
	TypeDepreciation: CategoryExpense,
}

// categoryRequired lists the types that must carry a category by policy.
var categoryRequired = map[TransactionType]bool{
	TypeSale:     true,
	TypeExpense:  true,
	TypePurchase: true,
	TypeRefund:   true,
}

// IsValid reports whether t is part of the fixed enumeration.
func (t TransactionType) IsValid() bool {
	_, ok := classification[t]
	return ok
}

// Classify returns the INCOME/EXPENSE/TRANSFER classification for t.
func (t TransactionType) Classify() (CategoryType, error) {
	c, ok := classification[t]
	if !ok {
		return "", ErrUnknownTransactionType
	}

	return c, nil
}

// RequiresCategory reports whether a posting of this type must reference a category.
func (t TransactionType) RequiresCategory() bool {
	return categoryRequired[t]
}

// TransactionTypes returns every valid transaction type.
func TransactionTypes() []TransactionType {
	types := make([]TransactionType, 0, len(classification))
	for t := range classification {
		types = append(types, t)
	}

	return types
}

// Transaction is one recorded business event. Its amount and type are
// immutable once posted; movements against accounts live in
// AccountTransaction rows created atomically with it.
type Transaction struct {
	ID          string
	BusinessID  string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CategoryID  *string
	CustomerID  *string
	CreatedAt   time.Time
}

// Validate checks the transaction-level shape rules.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrUnknownTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Type.RequiresCategory() && t.CategoryID == nil {
		return ErrCategoryRequired
	}

	return nil
}
