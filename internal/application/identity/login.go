package identity

import (
	"context"
	"strings"

	"github.com/adminboard/account-service/internal/domain"
	"github.com/adminboard/account-service/internal/logger"
)

// Login authenticates an account and issues an access token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration):
// unknown email and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials; store failures stay store failures.
		if domain.Is(err, "account_not_found") {
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	// Best-effort timestamp: a failed last_login_at write does not invalidate
	// an otherwise-successful login.
	now := s.now()
	rows, err := s.accounts.TouchLastLogin(ctx, a.ID, now)
	switch {
	case err != nil:
		logger.WithCtx(ctx).Warn().Err(err).Int64("account_id", a.ID).
			Msg("last_login_at update failed")
	case rows == 1:
		// Only claim the timestamp the store actually persisted; a zero-row
		// update means the guard kept an older value in place.
		a.LastLoginAt = &now
	}

	token, err := s.signer.SignAccessToken(a.ID, domain.RoleUser, s.accessTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Account:   a,
		Role:      domain.RoleUser,
		Token:     token,
		ExpiresIn: int64(s.accessTTL.Seconds()),
	}, nil
}
