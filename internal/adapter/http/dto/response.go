package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Provider         string          `json:"provider,omitempty"`
	AccountNumber    string          `json:"accountNumber,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	Currency         string          `json:"currency"`
	IsDefault        bool            `json:"isDefault"`
	TransactionCount int64           `json:"transactionCount"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:               a.ID,
		Name:             a.Name,
		Type:             string(a.Type),
		Provider:         a.Provider,
		AccountNumber:    a.AccountNumber,
		Balance:          a.Balance,
		Currency:         a.Currency,
		IsDefault:        a.IsDefault,
		TransactionCount: a.TransactionCount,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"businessId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	CustomerID  *string         `json:"customerId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		BusinessID:  t.BusinessID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		CategoryID:  t.CategoryID,
		CustomerID:  t.CustomerID,
		CreatedAt:   t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// MovementResponse represents one signed balance movement.
type MovementResponse struct {
	ID                    string          `json:"id"`
	AccountID             string          `json:"accountId"`
	TransactionID         string          `json:"transactionId"`
	Amount                decimal.Decimal `json:"amount"`
	IsTransferSource      bool            `json:"isTransferSource,omitempty"`
	IsTransferDestination bool            `json:"isTransferDestination,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// MovementFromDomain converts a domain movement to response.
func MovementFromDomain(m *domain.AccountTransaction) *MovementResponse {
	return &MovementResponse{
		ID:                    m.ID,
		AccountID:             m.AccountID,
		TransactionID:         m.TransactionID,
		Amount:                m.Amount,
		IsTransferSource:      m.IsTransferSource,
		IsTransferDestination: m.IsTransferDestination,
		CreatedAt:             m.CreatedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.AccountTransaction) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// TransactionDetailResponse is a transaction with its movements.
type TransactionDetailResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	Movements   []*MovementResponse  `json:"movements"`
}

// TransactionDetailFromUseCase converts a use case detail to response.
func TransactionDetailFromUseCase(d *usecase.TransactionDetail) *TransactionDetailResponse {
	return &TransactionDetailResponse{
		Transaction: TransactionFromDomain(d.Transaction),
		Movements:   MovementsFromDomain(d.Movements),
	}
}

// HistoryEntryResponse is one movement with its transaction context.
type HistoryEntryResponse struct {
	Movement     *MovementResponse    `json:"movement"`
	Transaction  *TransactionResponse `json:"transaction"`
	CategoryName string               `json:"categoryName,omitempty"`
}

// AccountHistoryResponse is an account plus a page of its history.
type AccountHistoryResponse struct {
	Account *AccountResponse        `json:"account"`
	Entries []*HistoryEntryResponse `json:"entries"`
}

// AccountHistoryFromUseCase converts a use case history to response.
func AccountHistoryFromUseCase(h *usecase.AccountHistory) *AccountHistoryResponse {
	entries := make([]*HistoryEntryResponse, len(h.Entries))
	for i, e := range h.Entries {
		entries[i] = &HistoryEntryResponse{
			Movement:     MovementFromDomain(&e.Movement),
			Transaction:  TransactionFromDomain(&e.Transaction),
			CategoryName: e.CategoryName,
		}
	}
	return &AccountHistoryResponse{
		Account: AccountFromDomain(h.Account),
		Entries: entries,
	}
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = &CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Type:        string(c.Type),
			Description: c.Description,
		}
	}
	return result
}

// BusinessResponse represents a business in API responses.
type BusinessResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// BusinessFromDomain converts domain business to response.
func BusinessFromDomain(b *domain.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Type:      b.Type,
		CreatedAt: b.CreatedAt,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	BusinessID string `json:"businessId,omitempty"`
}

// UserFromDomain converts domain user to response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		BusinessID: u.BusinessID,
	}
}

// AuthResponse is returned on successful sign-in.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// CashflowPointResponse is one day of the cashflow chart.
type CashflowPointResponse struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CashflowFromDomain converts cashflow points to responses.
func CashflowFromDomain(points []domain.CashflowPoint) []CashflowPointResponse {
	result := make([]CashflowPointResponse, len(points))
	for i, p := range points {
		result[i] = CashflowPointResponse{
			Date:    p.Date.Format("2006-01-02"),
			Income:  p.Income,
			Expense: p.Expense,
		}
	}
	return result
}

// BalanceDriftResponse reports one inconsistent account balance.
type BalanceDriftResponse struct {
	AccountID   string          `json:"accountId"`
	AccountName string          `json:"accountName"`
	Balance     decimal.Decimal `json:"balance"`
	MovementSum decimal.Decimal `json:"movementSum"`
	Drift       decimal.Decimal `json:"drift"`
}

// BalanceDriftsFromDomain converts drifts to responses.
func BalanceDriftsFromDomain(drifts []domain.BalanceDrift) []BalanceDriftResponse {
	result := make([]BalanceDriftResponse, len(drifts))
	for i, d := range drifts {
		result[i] = BalanceDriftResponse{
			AccountID:   d.AccountID,
			AccountName: d.AccountName,
			Balance:     d.Balance,
			MovementSum: d.MovementSum,
			Drift:       d.Drift(),
		}
	}
	return result
}
