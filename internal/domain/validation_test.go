package domain

import (
	"errors"
	"testing"
)

func TestValidateAccountName(t *testing.T) {
	if err := ValidateAccountName("Cash"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateAccountName("   "); !errors.Is(err, ErrInvalidAccountName) {
		t.Errorf("expected ErrInvalidAccountName, got %v", err)
	}

	long := make([]byte, MaxAccountNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateAccountName(string(long)); !errors.Is(err, ErrInvalidAccountName) {
		t.Errorf("expected ErrInvalidAccountName for long name, got %v", err)
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"XAF", "xaf", " NGN ", "USD"} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("expected %q to be valid, got %v", code, err)
		}
	}

	if err := ValidateCurrency("DOGE"); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("owner@bizsense.cm"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateEmail("not-an-email"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("longenough1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidatePassword("short"); !errors.Is(err, ErrPasswordTooWeak) {
		t.Errorf("expected ErrPasswordTooWeak, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, 20, 0},
		{-5, -3, 20, 0},
		{500, 10, 100, 10},
		{50, 5, 50, 5},
	}

	for _, tt := range tests {
		limit, offset := ValidatePagination(tt.limit, tt.offset)
		if limit != tt.wantLimit || offset != tt.wantOffset {
			t.Errorf("ValidatePagination(%d, %d) = (%d, %d), want (%d, %d)",
				tt.limit, tt.offset, limit, offset, tt.wantLimit, tt.wantOffset)
		}
	}
}
