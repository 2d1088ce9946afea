package usecase

import "time"

const (
	// DefaultCurrency is assigned to accounts created without one.
	DefaultCurrency = "XAF"

	// CategoryCacheTTL is how long the static category table is cached.
	CategoryCacheTTL = time.Hour

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// DefaultCashflowWindow is the report range when none is given.
	DefaultCashflowWindow = 30 * 24 * time.Hour
)
