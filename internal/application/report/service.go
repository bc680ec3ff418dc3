// Package report assembles the activity dashboard document from windowed
// aggregation queries over the account store.
package report

import (
	"context"
	"fmt"
	"time"
)

const (
	recentAccountLimit = 10
	registrationWindow = 7 * 24 * time.Hour

	// Rendered the way a dashboard shows local timestamps.
	activityTimeLayout = "Jan 2, 2006 3:04 PM"
)

// Document is the assembled report payload.
type Document struct {
	UserActivity    []ActivityEntry
	Trends          Trends
	System          SystemMetrics
	SystemAvailable bool
}

// ActivityEntry is one line of the recent-accounts feed.
type ActivityEntry struct {
	Name   string
	Action string
}

type Trends struct {
	RegistrationsLast7Days int
	ActiveUsersToday       int
	TotalUsers             int
	NewItemsCreatedToday   int
}

type Service struct {
	accounts AccountRepo
	metrics  MetricsProvider
	items    ItemStats
	cache    Cache // nil disables caching

	now func() time.Time
}

func NewService(accounts AccountRepo, metrics MetricsProvider, items ItemStats, cache Cache) *Service {
	return &Service{
		accounts: accounts,
		metrics:  metrics,
		items:    items,
		cache:    cache,
		now:      time.Now,
	}
}

// WithClock overrides the time source (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Generate runs the aggregation queries and assembles the document. The
// queries execute independently, so the counters may be mutually
// inconsistent under concurrent writes; fine for a dashboard. Any store
// failure aborts the whole report — no partial document is returned or
// cached.
func (s *Service) Generate(ctx context.Context) (Document, error) {
	if s.cache != nil {
		if doc, ok := s.cache.Get(ctx); ok {
			return *doc, nil
		}
	}

	now := s.now()

	recent, err := s.accounts.ListRecent(ctx, recentAccountLimit)
	if err != nil {
		return Document{}, err
	}

	activity := make([]ActivityEntry, 0, len(recent))
	for _, a := range recent {
		entry := ActivityEntry{Name: a.Name, Action: "Registered"}
		if a.LastLoginAt != nil {
			entry.Action = fmt.Sprintf("Logged in (%s)", a.LastLoginAt.Local().Format(activityTimeLayout))
		}
		activity = append(activity, entry)
	}

	regs, err := s.accounts.CountCreatedSince(ctx, now.Add(-registrationWindow))
	if err != nil {
		return Document{}, err
	}

	active, err := s.accounts.CountLoggedInSince(ctx, startOfDay(now))
	if err != nil {
		return Document{}, err
	}

	total, err := s.accounts.CountAll(ctx)
	if err != nil {
		return Document{}, err
	}

	newItems := 0
	if s.items != nil {
		newItems, err = s.items.CountCreatedSince(ctx, startOfDay(now))
		if err != nil {
			return Document{}, err
		}
	}

	doc := Document{
		UserActivity: activity,
		Trends: Trends{
			RegistrationsLast7Days: regs,
			ActiveUsersToday:       active,
			TotalUsers:             total,
			NewItemsCreatedToday:   newItems,
		},
	}
	if s.metrics != nil {
		doc.System, doc.SystemAvailable = s.metrics.Snapshot(ctx)
	}

	if s.cache != nil {
		s.cache.Set(ctx, doc)
	}
	return doc, nil
}

// startOfDay zeroes the time-of-day component in t's own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
