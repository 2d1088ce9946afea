package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/dto"
	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

type accountServiceStub struct {
	createFn     func(ctx context.Context, caller usecase.Identity, input usecase.CreateAccountInput) (*domain.Account, error)
	setDefaultFn func(ctx context.Context, caller usecase.Identity, accountID string) (*domain.Account, error)
	listFn       func(ctx context.Context, caller usecase.Identity) ([]*domain.Account, error)
	historyFn    func(ctx context.Context, caller usecase.Identity, input usecase.AccountHistoryInput) (*usecase.AccountHistory, error)
}

func (s *accountServiceStub) CreateAccount(ctx context.Context, caller usecase.Identity, input usecase.CreateAccountInput) (*domain.Account, error) {
	return s.createFn(ctx, caller, input)
}

func (s *accountServiceStub) SetDefaultAccount(ctx context.Context, caller usecase.Identity, accountID string) (*domain.Account, error) {
	return s.setDefaultFn(ctx, caller, accountID)
}

func (s *accountServiceStub) ListAccounts(ctx context.Context, caller usecase.Identity) ([]*domain.Account, error) {
	return s.listFn(ctx, caller)
}

func (s *accountServiceStub) GetAccountHistory(ctx context.Context, caller usecase.Identity, input usecase.AccountHistoryInput) (*usecase.AccountHistory, error) {
	return s.historyFn(ctx, caller, input)
}

func TestAccountHandler_Create_Success(t *testing.T) {
	account := &domain.Account{
		ID:         "acc-1",
		BusinessID: "biz-1",
		Name:       "Cash Drawer",
		Type:       domain.AccountCash,
		Balance:    decimal.NewFromInt(50000),
		Currency:   "XAF",
		IsDefault:  true,
	}

	var captured usecase.CreateAccountInput
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, caller usecase.Identity, input usecase.CreateAccountInput) (*domain.Account, error) {
			captured = input
			return account, nil
		},
	})

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Name:    "Cash Drawer",
		Type:    "CASH",
		Balance: decimal.NewFromInt(50000),
	})

	req := authenticated(httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Name != "Cash Drawer" || captured.Type != domain.AccountCash {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	var data dto.AccountResponse
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data.ID != "acc-1" || !data.IsDefault {
		t.Fatalf("expected account acc-1 marked default, got %+v", data)
	}
}

func TestAccountHandler_Create_DuplicateName(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, caller usecase.Identity, input usecase.CreateAccountInput) (*domain.Account, error) {
			return nil, domain.ErrDuplicateAccountName
		},
	})

	body, _ := json.Marshal(dto.CreateAccountRequest{Name: "Cash Drawer", Type: "CASH"})
	req := authenticated(httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAccountHandler_SetDefault(t *testing.T) {
	var capturedID string
	handler := NewAccountHandler(&accountServiceStub{
		setDefaultFn: func(ctx context.Context, caller usecase.Identity, accountID string) (*domain.Account, error) {
			capturedID = accountID
			return &domain.Account{ID: accountID, BusinessID: "biz-1", IsDefault: true}, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodPut, "/accounts/acc-2/default", nil))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "acc-2")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.SetDefault(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedID != "acc-2" {
		t.Fatalf("expected account acc-2, got %s", capturedID)
	}
}

func TestAccountHandler_SetDefault_NotFound(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		setDefaultFn: func(ctx context.Context, caller usecase.Identity, accountID string) (*domain.Account, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodPut, "/accounts/ghost/default", nil))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "ghost")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.SetDefault(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_List(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "acc-1", BusinessID: "biz-1", Name: "Cash Drawer", Type: domain.AccountCash, Currency: "XAF"},
		{ID: "acc-2", BusinessID: "biz-1", Name: "MoMo", Type: domain.AccountMobileMoney, Currency: "XAF"},
	}

	handler := NewAccountHandler(&accountServiceStub{
		listFn: func(ctx context.Context, caller usecase.Identity) ([]*domain.Account, error) {
			return accounts, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodGet, "/accounts", nil))
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	var data []dto.AccountResponse
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(data))
	}
}

func TestAccountHandler_History_PaginationParams(t *testing.T) {
	var captured usecase.AccountHistoryInput
	handler := NewAccountHandler(&accountServiceStub{
		historyFn: func(ctx context.Context, caller usecase.Identity, input usecase.AccountHistoryInput) (*usecase.AccountHistory, error) {
			captured = input
			return &usecase.AccountHistory{
				Account: &domain.Account{ID: input.AccountID, BusinessID: "biz-1"},
			}, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/history?limit=50&offset=100", nil))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "acc-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.AccountID != "acc-1" || captured.Limit != 50 || captured.Offset != 100 {
		t.Fatalf("expected query params forwarded, got %+v", captured)
	}
}
