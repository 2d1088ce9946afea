package domain

import "errors"

var (
	// Identity errors
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNoBusiness       = errors.New("no business associated with this user")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrBusinessMismatch = errors.New("resource belongs to another business")

	// Account errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrDuplicateAccountName = errors.New("account with this name already exists")

	// Posting errors
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrNoAllocations          = errors.New("at least one account allocation is required")
	ErrCategoryRequired       = errors.New("category is required for this transaction type")
	ErrMalformedTransfer      = errors.New("transfer requires exactly one source and one destination of equal amount")
	ErrTransferSameAccount    = errors.New("cannot transfer to the same account")
	ErrTransferFlagsForbidden = errors.New("transfer flags are only valid on transfers")

	// Lookup errors
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBusinessNotFound    = errors.New("business not found")
	ErrUserNotFound        = errors.New("user not found")

	// Onboarding errors
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrBusinessExists     = errors.New("user already has a business")
	ErrInvalidBusiness    = errors.New("business name and type are required")
)
