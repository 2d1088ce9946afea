package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/dto"
	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, caller usecase.Identity, input usecase.CreateAccountInput) (*domain.Account, error)
	SetDefaultAccount(ctx context.Context, caller usecase.Identity, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, caller usecase.Identity) ([]*domain.Account, error)
	GetAccountHistory(ctx context.Context, caller usecase.Identity, input usecase.AccountHistoryInput) (*usecase.AccountHistory, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), caller, req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "account created", dto.AccountFromDomain(account))
}

// List lists the caller's accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	accounts, err := h.accountUC.ListAccounts(r.Context(), caller)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, "ok", dto.AccountsFromDomain(accounts))
}

// SetDefault marks an account as the business default.
func (h *AccountHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account id")
		return
	}

	account, err := h.accountUC.SetDefaultAccount(r.Context(), caller, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, "default account updated", dto.AccountFromDomain(account))
}

// History returns an account with a page of its movement history.
func (h *AccountHandler) History(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account id")
		return
	}

	history, err := h.accountUC.GetAccountHistory(r.Context(), caller, usecase.AccountHistoryInput{
		AccountID: id,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, "ok", dto.AccountHistoryFromUseCase(history))
}
