package domain

import "time"

// User is an authenticated caller. BusinessID is empty until onboarding
// creates a business; mutations fail closed while it is empty.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	BusinessID     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasBusiness reports whether the user finished onboarding.
func (u *User) HasBusiness() bool {
	return u.BusinessID != ""
}
