package domain

import "time"

// RoleUser is the only role this service assigns; every authenticated
// account carries it.
const RoleUser = "user"

type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// AccountSummary is the credential-free projection used by listings.
type AccountSummary struct {
	ID    int64
	Name  string
	Email string
}
