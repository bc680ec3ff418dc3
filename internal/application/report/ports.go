package report

import (
	"context"
	"time"

	"github.com/adminboard/account-service/internal/domain"
)

/*
AccountRepo
-----------
Aggregation port. Each method is a single independent statement; the report
makes no snapshot-isolation claim across them.
*/
type AccountRepo interface {
	// ListRecent returns up to limit accounts, newest created_at first.
	ListRecent(ctx context.Context, limit int) ([]domain.Account, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	CountLoggedInSince(ctx context.Context, since time.Time) (int, error)
	CountAll(ctx context.Context) (int, error)
}

/*
MetricsProvider
---------------
Capability port for host metrics. The bool reports whether a real (or
illustrative) snapshot is available; callers render "n/a" otherwise.
*/
type SystemMetrics struct {
	CPUUsage    string
	MemoryUsage string
	DiskUsage   string
	Uptime      string
}

type MetricsProvider interface {
	Snapshot(ctx context.Context) (SystemMetrics, bool)
}

/*
ItemStats
---------
Capability port for the item subsystem the dashboard references. No item
entity is modeled here, so the default implementation reports zero.
*/
type ItemStats interface {
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

/*
Cache
-----
Best-effort document cache. Get misses on any error; Set failures are the
implementation's problem to log, never the caller's.
*/
type Cache interface {
	Get(ctx context.Context) (*Document, bool)
	Set(ctx context.Context, doc Document)
}
