package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowPoint is one day of aggregated inflow/outflow for the dashboard
// chart. Income and Expense are both positive magnitudes.
type CashflowPoint struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// BalanceDrift reports an account whose cached balance disagrees with its
// reconstruction. MovementSum is the opening balance plus every movement ever
// applied; for a consistent ledger it equals Balance.
type BalanceDrift struct {
	AccountID   string
	AccountName string
	Balance     decimal.Decimal
	MovementSum decimal.Decimal
}

// Drift returns balance minus the reconstruction.
func (d BalanceDrift) Drift() decimal.Decimal {
	return d.Balance.Sub(d.MovementSum)
}

// AccountHistoryEntry is one movement joined with its transaction context,
// as rendered on the account detail page.
type AccountHistoryEntry struct {
	Movement     AccountTransaction
	Transaction  Transaction
	CategoryName string
}
