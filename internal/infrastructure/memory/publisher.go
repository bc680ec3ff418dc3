package memory

import (
	"context"
	"log"

	"github.com/adminboard/account-service/internal/application/directory"
	"github.com/adminboard/account-service/internal/application/identity"
)

// NoopPublisher logs lifecycle events instead of sending them anywhere.
// Used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishAccountRegistered(ctx context.Context, evt identity.AccountRegisteredEvent) error {
	log.Printf("[noop-pub] account registered: id=%d email=%s", evt.ID, evt.Email)
	return nil
}

func (p *NoopPublisher) PublishAccountDeleted(ctx context.Context, evt directory.AccountDeletedEvent) error {
	log.Printf("[noop-pub] account deleted: id=%d", evt.ID)
	return nil
}
