package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/dto"
	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// PostingService defines the posting behavior needed by TransactionHandler.
type PostingService interface {
	Post(ctx context.Context, caller usecase.Identity, input usecase.PostTransactionInput) (*domain.Transaction, error)
}

// TransactionQueryService defines the query behavior needed by TransactionHandler.
type TransactionQueryService interface {
	ListTransactions(ctx context.Context, caller usecase.Identity, filter usecase.TransactionFilter) ([]*domain.Transaction, error)
	GetTransaction(ctx context.Context, caller usecase.Identity, id string) (*usecase.TransactionDetail, error)
}

// TransactionHandler handles transaction posting and queries.
type TransactionHandler struct {
	postingUC PostingService
	queryUC   TransactionQueryService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(postingUC PostingService, queryUC TransactionQueryService) *TransactionHandler {
	return &TransactionHandler{postingUC: postingUC, queryUC: queryUC}
}

// Create posts a transaction against the ledger.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dto.PostTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.postingUC.Post(r.Context(), caller, req.ToUseCaseInput())
	if err != nil {
		// An unknown account inside a posting is a bad request, not a
		// missing resource: the posting itself names it.
		if errors.Is(err, domain.ErrAccountNotFound) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "transaction recorded", dto.TransactionFromDomain(transaction))
}

// List lists the caller's transactions, newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter := usecase.TransactionFilter{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	}

	if raw := r.URL.Query().Get("type"); raw != "" {
		txType := domain.TransactionType(raw)
		if !txType.IsValid() {
			writeError(w, http.StatusBadRequest, "unknown transaction type")
			return
		}
		filter.Type = &txType
	}

	if from, ok := parseTimeQuery(r, "from"); ok {
		filter.From = &from
	}
	if to, ok := parseTimeQuery(r, "to"); ok {
		filter.To = &to
	}

	transactions, err := h.queryUC.ListTransactions(r.Context(), caller, filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, "ok", dto.TransactionsFromDomain(transactions))
}

// Get returns one transaction with its movements.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction id")
		return
	}

	detail, err := h.queryUC.GetTransaction(r.Context(), caller, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, "ok", dto.TransactionDetailFromUseCase(detail))
}

// parseTimeQuery parses an RFC 3339 or date-only query parameter.
func parseTimeQuery(r *http.Request, key string) (time.Time, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}

	return time.Time{}, false
}
