package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/handler"
	apimiddleware "github.com/Nebur23/bizsense-ai/internal/adapter/http/middleware"
	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/auth"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_AuthRequiredForProtectedRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	jwtManager := auth.NewJWTManager("router-test-secret", time.Minute)
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.JWTManager = jwtManager
		cfg.IdempotencyStore = store
	}))

	token, err := jwtManager.Generate(&domain.User{ID: "user-1", Email: "amina@example.com", BusinessID: "biz-1"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	body := `{"name":"Cash Drawer","type":"CASH"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"GET /api/v1/auth/me",
		"POST /api/v1/businesses",
		"GET /api/v1/categories",
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/",
		"PUT /api/v1/accounts/{id}/default",
		"GET /api/v1/accounts/{id}/history",
		"POST /api/v1/transactions/",
		"GET /api/v1/transactions/",
		"GET /api/v1/transactions/{id}",
		"GET /api/v1/reports/cashflow",
		"GET /api/v1/ledger/verify",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(t *testing.T, opts ...func(*RouterConfig)) RouterConfig {
	t.Helper()

	cfg := RouterConfig{
		AuthHandler:        handler.NewAuthHandler(&stubUserService{}, &stubTokenIssuer{}),
		BusinessHandler:    handler.NewBusinessHandler(&stubBusinessService{}),
		AccountHandler:     handler.NewAccountHandler(&stubAccountService{}),
		TransactionHandler: handler.NewTransactionHandler(&stubPostingService{}, &stubTransactionQueryService{}),
		CategoryHandler:    handler.NewCategoryHandler(&stubCategoryService{}),
		ReportHandler:      handler.NewReportHandler(&stubReportService{}),
		HealthHandler:      &handler.HealthHandler{},
		JWTManager:         auth.NewJWTManager("router-test-secret", time.Minute),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubUserService struct{}

func (stubUserService) Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error) {
	return &domain.User{ID: "user-1"}, nil
}

func (stubUserService) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error) {
	return &domain.User{ID: "user-1"}, nil
}

func (stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) Generate(user *domain.User) (string, error) {
	return "token", nil
}

type stubBusinessService struct{}

func (stubBusinessService) CreateBusiness(ctx context.Context, caller usecase.Identity, input usecase.CreateBusinessInput) (*domain.Business, error) {
	return &domain.Business{ID: "biz-1"}, nil
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, caller usecase.Identity, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: "acc-1"}, nil
}

func (stubAccountService) SetDefaultAccount(ctx context.Context, caller usecase.Identity, accountID string) (*domain.Account, error) {
	return &domain.Account{ID: accountID}, nil
}

func (stubAccountService) ListAccounts(ctx context.Context, caller usecase.Identity) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (stubAccountService) GetAccountHistory(ctx context.Context, caller usecase.Identity, input usecase.AccountHistoryInput) (*usecase.AccountHistory, error) {
	return &usecase.AccountHistory{}, nil
}

type stubPostingService struct{}

func (stubPostingService) Post(ctx context.Context, caller usecase.Identity, input usecase.PostTransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: "tx-1"}, nil
}

type stubTransactionQueryService struct{}

func (stubTransactionQueryService) ListTransactions(ctx context.Context, caller usecase.Identity, filter usecase.TransactionFilter) ([]*domain.Transaction, error) {
	return []*domain.Transaction{}, nil
}

func (stubTransactionQueryService) GetTransaction(ctx context.Context, caller usecase.Identity, id string) (*usecase.TransactionDetail, error) {
	return &usecase.TransactionDetail{}, nil
}

type stubCategoryService struct{}

func (stubCategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return []*domain.Category{}, nil
}

type stubReportService struct{}

func (stubReportService) Cashflow(ctx context.Context, caller usecase.Identity, input usecase.CashflowInput) ([]domain.CashflowPoint, error) {
	return []domain.CashflowPoint{}, nil
}

func (stubReportService) VerifyConsistency(ctx context.Context) ([]domain.BalanceDrift, error) {
	return []domain.BalanceDrift{}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
