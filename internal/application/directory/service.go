// Package directory implements the list/update/delete CRUD surface over the
// account set. The credential never leaves the store through this package.
package directory

import (
	"context"
	"strings"

	"github.com/adminboard/account-service/internal/domain"
	"github.com/adminboard/account-service/internal/logger"
)

type AccountRepo interface {
	// List returns credential-free rows in insertion order (by id).
	List(ctx context.Context) ([]domain.AccountSummary, error)

	// UpdateProfile and Delete report affected rows; zero means the account
	// does not exist.
	UpdateProfile(ctx context.Context, accountID int64, name, email string) (int64, error)
	Delete(ctx context.Context, accountID int64) (int64, error)
}

type EventPublisher interface {
	PublishAccountDeleted(ctx context.Context, evt AccountDeletedEvent) error
}

type AccountDeletedEvent struct {
	ID int64 `json:"id"`
}

type Service struct {
	accounts AccountRepo
	pub      EventPublisher
}

func NewService(accounts AccountRepo, pub EventPublisher) *Service {
	return &Service{accounts: accounts, pub: pub}
}

func (s *Service) List(ctx context.Context) ([]domain.AccountSummary, error) {
	return s.accounts.List(ctx)
}

// Update rewrites name and email unconditionally. An email colliding with
// another account surfaces as email_already_exists from the store layer.
func (s *Service) Update(ctx context.Context, accountID int64, name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return domain.ErrMissingField("name")
	}
	if email == "" {
		return domain.ErrMissingField("email")
	}

	n, err := s.accounts.UpdateProfile(ctx, accountID, name, email)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAccountNotFound()
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, accountID int64) error {
	n, err := s.accounts.Delete(ctx, accountID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAccountNotFound()
	}

	if s.pub != nil {
		if err := s.pub.PublishAccountDeleted(ctx, AccountDeletedEvent{ID: accountID}); err != nil {
			logger.WithCtx(ctx).Warn().Err(err).Int64("account_id", accountID).
				Msg("account.deleted publish failed")
		}
	}
	return nil
}
