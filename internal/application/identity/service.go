package identity

import (
	"time"

	"github.com/adminboard/account-service/internal/domain"
)

type Service struct {
	accounts AccountRepo
	hasher   PasswordHasher
	signer   TokenSigner
	pub      EventPublisher

	accessTTL time.Duration
	now       func() time.Time
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(accounts AccountRepo, hasher PasswordHasher, signer TokenSigner, pub EventPublisher, cfg Config) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Service{
		accounts:  accounts,
		hasher:    hasher,
		signer:    signer,
		pub:       pub,
		accessTTL: ttl,
		now:       time.Now,
	}
}

// WithClock overrides the time source (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

type SignupResult struct {
	Account domain.Account
}

type LoginResult struct {
	Account domain.Account
	Role    string
	Token   string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64
}
