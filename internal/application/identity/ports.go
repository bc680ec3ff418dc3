package identity

import (
	"context"
	"time"

	"github.com/adminboard/account-service/internal/domain"
)

/*
AccountRepo
-----------
Persistence port for the signup/login flows.
Only describes WHAT the identity service needs, not HOW it's stored.
*/
type AccountRepo interface {
	CountByEmail(ctx context.Context, email string) (int, error)
	Create(ctx context.Context, a domain.Account) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// TouchLastLogin stamps last_login_at and reports affected rows.
	TouchLastLogin(ctx context.Context, accountID int64, at time.Time) (int64, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	AccountID int64
	Role      string
	Exp       time.Time
}

type TokenSigner interface {
	SignAccessToken(accountID int64, role string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes account lifecycle events to the message broker.
Publishing is best-effort; a broker outage never fails a signup.
*/
type EventPublisher interface {
	PublishAccountRegistered(ctx context.Context, evt AccountRegisteredEvent) error
}

type AccountRegisteredEvent struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
