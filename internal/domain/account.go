package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates the kinds of monetary accounts a business can hold.
type AccountType string

const (
	AccountCash        AccountType = "CASH"
	AccountMobileMoney AccountType = "MOBILE_MONEY"
	AccountBank        AccountType = "BANK"
	AccountCredit      AccountType = "CREDIT"
	AccountOther       AccountType = "OTHER"
)

var validAccountTypes = map[AccountType]bool{
	AccountCash:        true,
	AccountMobileMoney: true,
	AccountBank:        true,
	AccountCredit:      true,
	AccountOther:       true,
}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	return validAccountTypes[t]
}

// Account is one monetary account owned by a business. Balance is a cached
// running total: it must equal the sum of signed movements recorded against
// the account over its lifetime. Exactly one account per business carries
// IsDefault at rest.
type Account struct {
	ID            string
	BusinessID    string
	Name          string
	Type          AccountType
	Provider      string
	AccountNumber string
	Balance       decimal.Decimal
	Currency      string
	IsDefault     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// TransactionCount is populated by list queries for the dashboard.
	TransactionCount int64
}

// Validate checks the account creation invariants.
func (a *Account) Validate() error {
	if err := ValidateAccountName(a.Name); err != nil {
		return err
	}

	if !a.Type.IsValid() {
		return ErrUnknownAccountType
	}

	return ValidateCurrency(a.Currency)
}
