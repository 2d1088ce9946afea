package domain

import "time"

// Business is one tenant. Accounts, categories, customers and transactions
// all hang off a business; requests never cross tenants.
type Business struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
}

// Customer is an optional counterparty attached to a transaction.
type Customer struct {
	ID         string
	BusinessID string
	Name       string
	Phone      string
	Email      string
	CreatedAt  time.Time
}
