package identity

import (
	"context"
	"strings"

	"github.com/adminboard/account-service/internal/domain"
	"github.com/adminboard/account-service/internal/logger"
)

// Signup registers a new account. The email pre-check keeps the common
// duplicate path cheap; the store's unique constraint stays the authority,
// so a concurrent signup racing past the check still surfaces as a conflict.
func (s *Service) Signup(ctx context.Context, name, email, password string) (SignupResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return SignupResult{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return SignupResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return SignupResult{}, domain.ErrMissingField("password")
	}

	n, err := s.accounts.CountByEmail(ctx, email)
	if err != nil {
		return SignupResult{}, err
	}
	if n > 0 {
		return SignupResult{}, domain.ErrEmailAlreadyExists()
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return SignupResult{}, domain.ErrHashFailed(err)
	}

	created, err := s.accounts.Create(ctx, domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return SignupResult{}, err
	}

	if s.pub != nil {
		evt := AccountRegisteredEvent{ID: created.ID, Name: created.Name, Email: created.Email}
		if err := s.pub.PublishAccountRegistered(ctx, evt); err != nil {
			logger.WithCtx(ctx).Warn().Err(err).Int64("account_id", created.ID).
				Msg("account.registered publish failed")
		}
	}

	return SignupResult{Account: created}, nil
}
