package postgres

import (
	"context"
	"log"
	"time"

	"github.com/adminboard/account-service/internal/domain"
)

// SeederHasher is the minimal hashing surface seeding needs.
type SeederHasher interface {
	Hash(password string) (string, error)
}

// SeederRepo is the minimal store surface seeding needs.
type SeederRepo interface {
	Create(ctx context.Context, a domain.Account) (domain.Account, error)
}

// SeedAccounts ensures the well-known local-development accounts exist.
// Restart safe: a duplicate email or a store hiccup skips that account,
// it never aborts startup.
func SeedAccounts(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedAccount struct {
		Name  string
		Email string
		Pass  string
	}

	seeds := []seedAccount{
		{Name: "Ada Admin", Email: "admin@example.com", Pass: "AdminPassword123!"},
		{Name: "Sam Staff", Email: "staff@example.com", Pass: "StaffPassword123!"},
		{Name: "Uma User", Email: "user@example.com", Pass: "UserPassword123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Printf("[seed] hash failed (%s): %v", s.Email, err)
			continue
		}

		a := domain.Account{
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}

		if _, err := repo.Create(ctx, a); err != nil {
			// already seeded on a previous boot, or the store is flaky
			continue
		}
	}

	log.Println("[seed] postgres accounts ensured")
}
