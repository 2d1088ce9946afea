package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// RegisterRequest represents a sign-up request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

// LoginRequest represents a sign-in request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *LoginRequest) ToUseCaseInput() usecase.AuthenticateInput {
	return usecase.AuthenticateInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// CreateBusinessRequest represents an onboarding request.
type CreateBusinessRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBusinessRequest) ToUseCaseInput() usecase.CreateBusinessInput {
	return usecase.CreateBusinessInput{
		Name: r.Name,
		Type: r.Type,
	}
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Provider      string          `json:"provider,omitempty"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	IsDefault     bool            `json:"isDefault"`
	Currency      string          `json:"currency,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:          r.Name,
		Type:          domain.AccountType(r.Type),
		Provider:      r.Provider,
		AccountNumber: r.AccountNumber,
		Balance:       r.Balance,
		IsDefault:     r.IsDefault,
		Currency:      r.Currency,
	}
}

// AllocationRequest represents one account split of a posting.
type AllocationRequest struct {
	AccountID             string          `json:"accountId"`
	Amount                decimal.Decimal `json:"amount"`
	IsTransferSource      bool            `json:"isTransferSource,omitempty"`
	IsTransferDestination bool            `json:"isTransferDestination,omitempty"`
}

// PostTransactionRequest represents a posting request.
type PostTransactionRequest struct {
	Type        string              `json:"type"`
	Amount      decimal.Decimal     `json:"amount"`
	Description string              `json:"description,omitempty"`
	Date        *time.Time          `json:"date,omitempty"`
	CategoryID  *string             `json:"categoryId,omitempty"`
	CustomerID  *string             `json:"customerId,omitempty"`
	Allocations []AllocationRequest `json:"accountTransactions"`
}

// ToUseCaseInput converts to use case input.
func (r *PostTransactionRequest) ToUseCaseInput() usecase.PostTransactionInput {
	allocations := make([]domain.Allocation, len(r.Allocations))
	for i, a := range r.Allocations {
		allocations[i] = domain.Allocation{
			AccountID:             a.AccountID,
			Amount:                a.Amount,
			IsTransferSource:      a.IsTransferSource,
			IsTransferDestination: a.IsTransferDestination,
		}
	}

	input := usecase.PostTransactionInput{
		Type:        domain.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		CustomerID:  r.CustomerID,
		Allocations: allocations,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}

	return input
}
