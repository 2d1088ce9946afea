package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Nebur23/bizsense-ai/internal/domain"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
	"github.com/Nebur23/bizsense-ai/internal/usecase/mocks"
)

type postingFixture struct {
	accountRepo     *mocks.MockAccountRepository
	transactionRepo *mocks.MockTransactionRepository
	movementRepo    *mocks.MockMovementRepository
	categoryRepo    *mocks.MockCategoryRepository
	customerRepo    *mocks.MockCustomerRepository
	txManager       *mocks.MockTransactionManager
	engine          *usecase.PostingUseCase
}

func newPostingFixture() *postingFixture {
	f := &postingFixture{
		accountRepo:     mocks.NewMockAccountRepository(),
		transactionRepo: mocks.NewMockTransactionRepository(),
		movementRepo:    mocks.NewMockMovementRepository(),
		categoryRepo:    mocks.NewMockCategoryRepository(),
		customerRepo:    mocks.NewMockCustomerRepository(),
		txManager:       mocks.NewMockTransactionManager(),
	}

	f.engine = usecase.NewPostingUseCase(
		f.txManager,
		f.accountRepo,
		f.transactionRepo,
		f.movementRepo,
		f.categoryRepo,
		f.customerRepo,
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
		nil,
	)

	return f
}

var caller = usecase.Identity{UserID: "user-1", BusinessID: "biz-1"}

func (f *postingFixture) seedAccount(id string, balance int64) {
	f.accountRepo.Seed(&domain.Account{
		ID:         id,
		BusinessID: "biz-1",
		Name:       id,
		Type:       domain.AccountCash,
		Balance:    decimal.NewFromInt(balance),
		Currency:   "XAF",
	})
}

func (f *postingFixture) seedCategory(id string, class domain.CategoryType) {
	f.categoryRepo.Seed(&domain.Category{ID: id, Name: id, Type: class})
}

func strPtr(s string) *string { return &s }

// Scenario: Cash at 50000, post a SALE of 3500. Balance conservation (P1).
func TestPostingUseCase_Post_Sale(t *testing.T) {
	f := newPostingFixture()
	f.seedAccount("cash", 50000)
	f.seedCategory("cat-sale", domain.CategoryIncome)

	transaction, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:       domain.TypeSale,
		Amount:     decimal.NewFromInt(3500),
		CategoryID: strPtr("cat-sale"),
		Allocations: []domain.Allocation{
			{AccountID: "cash", Amount: decimal.NewFromInt(3500)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if transaction.BusinessID != "biz-1" {
		t.Errorf("expected business biz-1, got %s", transaction.BusinessID)
	}

	if got := f.accountRepo.Get("cash").Balance; !got.Equal(decimal.NewFromInt(53500)) {
		t.Errorf("expected balance 53500, got %s", got)
	}

	if f.transactionRepo.Count() != 1 {
		t.Errorf("expected 1 transaction row, got %d", f.transactionRepo.Count())
	}

	movements := f.movementRepo.Movements()
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}
	if !movements[0].Amount.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("expected movement +3500, got %s", movements[0].Amount)
	}

	txs := f.txManager.Transactions()
	if len(txs) != 1 || !txs[0].Committed {
		t.Error("expected a single committed store transaction")
	}
}

func TestPostingUseCase_Post_ExpenseIsOutflow(t *testing.T) {
	f := newPostingFixture()
	f.seedAccount("cash", 10000)
	f.seedCategory("cat-exp", domain.CategoryExpense)

	_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:       domain.TypeExpense,
		Amount:     decimal.NewFromInt(2000),
		CategoryID: strPtr("cat-exp"),
		Allocations: []domain.Allocation{
			{AccountID: "cash", Amount: decimal.NewFromInt(2000)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.accountRepo.Get("cash").Balance; !got.Equal(decimal.NewFromInt(8000)) {
		t.Errorf("expected balance 8000, got %s", got)
	}
}

// A sale split over two accounts credits each by its own allocation amount.
func TestPostingUseCase_Post_SplitAllocations(t *testing.T) {
	f := newPostingFixture()
	f.seedAccount("cash", 1000)
	f.seedAccount("momo", 500)
	f.seedCategory("cat-sale", domain.CategoryIncome)

	_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:       domain.TypeSale,
		Amount:     decimal.NewFromInt(700),
		CategoryID: strPtr("cat-sale"),
		Allocations: []domain.Allocation{
			{AccountID: "cash", Amount: decimal.NewFromInt(300)},
			{AccountID: "momo", Amount: decimal.NewFromInt(400)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.accountRepo.Get("cash").Balance; !got.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("expected cash 1300, got %s", got)
	}
	if got := f.accountRepo.Get("momo").Balance; !got.Equal(decimal.NewFromInt(900)) {
		t.Errorf("expected momo 900, got %s", got)
	}
}

// Scenario: transfer 5000 from Cash (10000) to Bank (20000). Zero-sum (P2).
func TestPostingUseCase_Post_Transfer(t *testing.T) {
	f := newPostingFixture()
	f.seedAccount("cash", 10000)
	f.seedAccount("bank", 20000)

	amount := decimal.NewFromInt(5000)

	_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:   domain.TypeTransfer,
		Amount: amount,
		Allocations: []domain.Allocation{
			{AccountID: "cash", Amount: amount, IsTransferSource: true},
			{AccountID: "bank", Amount: amount, IsTransferDestination: true},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cash := f.accountRepo.Get("cash").Balance
	bank := f.accountRepo.Get("bank").Balance

	if !cash.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected cash 5000, got %s", cash)
	}
	if !bank.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("expected bank 25000, got %s", bank)
	}

	// Total across the business is unchanged.
	if total := cash.Add(bank); !total.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("expected total 30000, got %s", total)
	}

	// Movements for a transfer sum to zero.
	sum := decimal.Zero
	for _, mv := range f.movementRepo.Movements() {
		sum = sum.Add(mv.Amount)
	}
	if !sum.IsZero() {
		t.Errorf("expected movements to sum to zero, got %s", sum)
	}
}

// Scenario: posting against an unknown account leaves no trace (P3).
func TestPostingUseCase_Post_UnknownAccount(t *testing.T) {
	f := newPostingFixture()
	f.seedAccount("cash", 10000)
	f.seedCategory("cat-exp", domain.CategoryExpense)

	_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:       domain.TypeExpense,
		Amount:     decimal.NewFromInt(2000),
		CategoryID: strPtr("cat-exp"),
		Allocations: []domain.Allocation{
			{AccountID: "ghost", Amount: decimal.NewFromInt(2000)},
		},
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	if f.transactionRepo.Count() != 0 {
		t.Error("no transaction row should be created")
	}
	if len(f.movementRepo.Movements()) != 0 {
		t.Error("no movement rows should be created")
	}
	if got := f.accountRepo.Get("cash").Balance; !got.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("cash balance should be untouched, got %s", got)
	}

	txs := f.txManager.Transactions()
	if len(txs) != 1 || !txs[0].RolledBack {
		t.Error("expected the store transaction to roll back")
	}
}

// An account of another business is indistinguishable from a missing one.
func TestPostingUseCase_Post_ForeignAccount(t *testing.T) {
	f := newPostingFixture()
	f.accountRepo.Seed(&domain.Account{
		ID:         "other",
		BusinessID: "biz-2",
		Name:       "other",
		Type:       domain.AccountBank,
		Balance:    decimal.NewFromInt(1000),
		Currency:   "XAF",
	})

	_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:   domain.TypeDonation,
		Amount: decimal.NewFromInt(100),
		Allocations: []domain.Allocation{
			{AccountID: "other", Amount: decimal.NewFromInt(100)},
		},
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	if got := f.accountRepo.Get("other").Balance; !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("foreign balance should be untouched, got %s", got)
	}
}

// Category policy (P5): SALE/EXPENSE/PURCHASE/REFUND require a category.
func TestPostingUseCase_Post_CategoryPolicy(t *testing.T) {
	required := []domain.TransactionType{
		domain.TypeSale, domain.TypeExpense, domain.TypePurchase, domain.TypeRefund,
	}

	for _, txType := range required {
		t.Run(string(txType), func(t *testing.T) {
			f := newPostingFixture()
			f.seedAccount("cash", 10000)

			_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
				Type:   txType,
				Amount: decimal.NewFromInt(100),
				Allocations: []domain.Allocation{
					{AccountID: "cash", Amount: decimal.NewFromInt(100)},
				},
			})
			if !errors.Is(err, domain.ErrCategoryRequired) {
				t.Fatalf("expected ErrCategoryRequired, got %v", err)
			}

			if len(f.txManager.Transactions()) != 0 {
				t.Error("validation failures must not open a store transaction")
			}
		})
	}
}

func TestPostingUseCase_Post_UnknownCategory(t *testing.T) {
	f := newPostingFixture()
	f.seedAccount("cash", 10000)

	_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:       domain.TypeSale,
		Amount:     decimal.NewFromInt(100),
		CategoryID: strPtr("missing"),
		Allocations: []domain.Allocation{
			{AccountID: "cash", Amount: decimal.NewFromInt(100)},
		},
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestPostingUseCase_Post_UnknownCustomer(t *testing.T) {
	f := newPostingFixture()
	f.seedAccount("cash", 10000)
	f.seedCategory("cat-sale", domain.CategoryIncome)

	_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:       domain.TypeSale,
		Amount:     decimal.NewFromInt(100),
		CategoryID: strPtr("cat-sale"),
		CustomerID: strPtr("nobody"),
		Allocations: []domain.Allocation{
			{AccountID: "cash", Amount: decimal.NewFromInt(100)},
		},
	})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestPostingUseCase_Post_ValidationFailures(t *testing.T) {
	amount := decimal.NewFromInt(100)

	tests := []struct {
		name    string
		input   usecase.PostTransactionInput
		wantErr error
	}{
		{
			name: "unknown type",
			input: usecase.PostTransactionInput{
				Type:        "BARTER",
				Amount:      amount,
				Allocations: []domain.Allocation{{AccountID: "cash", Amount: amount}},
			},
			wantErr: domain.ErrUnknownTransactionType,
		},
		{
			name:    "no allocations",
			input:   usecase.PostTransactionInput{Type: domain.TypeDonation, Amount: amount},
			wantErr: domain.ErrNoAllocations,
		},
		{
			name: "non-positive allocation",
			input: usecase.PostTransactionInput{
				Type:        domain.TypeDonation,
				Amount:      amount,
				Allocations: []domain.Allocation{{AccountID: "cash", Amount: decimal.NewFromInt(-5)}},
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "transfer with one leg",
			input: usecase.PostTransactionInput{
				Type:   domain.TypeTransfer,
				Amount: amount,
				Allocations: []domain.Allocation{
					{AccountID: "cash", Amount: amount, IsTransferSource: true},
				},
			},
			wantErr: domain.ErrMalformedTransfer,
		},
		{
			name: "transfer with mismatched amounts",
			input: usecase.PostTransactionInput{
				Type:   domain.TypeTransfer,
				Amount: amount,
				Allocations: []domain.Allocation{
					{AccountID: "cash", Amount: amount, IsTransferSource: true},
					{AccountID: "bank", Amount: decimal.NewFromInt(50), IsTransferDestination: true},
				},
			},
			wantErr: domain.ErrMalformedTransfer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPostingFixture()
			f.seedAccount("cash", 10000)
			f.seedAccount("bank", 10000)

			_, err := f.engine.Post(context.Background(), caller, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			if f.transactionRepo.Count() != 0 || len(f.movementRepo.Movements()) != 0 {
				t.Error("failed postings must not persist rows")
			}
		})
	}
}

func TestPostingUseCase_Post_Unauthorized(t *testing.T) {
	f := newPostingFixture()

	_, err := f.engine.Post(context.Background(), usecase.Identity{}, usecase.PostTransactionInput{
		Type:        domain.TypeDonation,
		Amount:      decimal.NewFromInt(100),
		Allocations: []domain.Allocation{{AccountID: "cash", Amount: decimal.NewFromInt(100)}},
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	_, err = f.engine.Post(context.Background(), usecase.Identity{UserID: "user-1"}, usecase.PostTransactionInput{
		Type:        domain.TypeDonation,
		Amount:      decimal.NewFromInt(100),
		Allocations: []domain.Allocation{{AccountID: "cash", Amount: decimal.NewFromInt(100)}},
	})
	if !errors.Is(err, domain.ErrNoBusiness) {
		t.Fatalf("expected ErrNoBusiness, got %v", err)
	}
}

func TestPostingUseCase_Post_CommitFailure(t *testing.T) {
	f := newPostingFixture()
	f.seedAccount("cash", 10000)

	commitErr := errors.New("connection reset")
	f.txManager.BeginFunc = func(ctx context.Context) (usecase.Transaction, error) {
		return &mocks.MockTransaction{
			CommitFunc: func(ctx context.Context) error { return commitErr },
		}, nil
	}

	_, err := f.engine.Post(context.Background(), caller, usecase.PostTransactionInput{
		Type:        domain.TypeDonation,
		Amount:      decimal.NewFromInt(100),
		Allocations: []domain.Allocation{{AccountID: "cash", Amount: decimal.NewFromInt(100)}},
	})
	if !errors.Is(err, commitErr) {
		t.Fatalf("expected commit error to surface, got %v", err)
	}
}
