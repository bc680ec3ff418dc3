package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adminboard/account-service/internal/domain"
)

// AccountRepo is an in-memory account store for local development and
// handler tests. It mirrors the postgres repo's semantics, including
// duplicate-email rejection and the monotonic last-login guard.
type AccountRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]domain.Account
	byEmail map[string]int64 // email -> account ID
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{
		nextID:  1,
		byID:    make(map[int64]domain.Account),
		byEmail: make(map[string]int64),
	}
}

// ---- identity.AccountRepo ----

func (r *AccountRepo) CountByEmail(ctx context.Context, email string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.byEmail[email]; ok {
		return 1, nil
	}
	return 0, nil
}

func (r *AccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[a.Email]; exists {
		return domain.Account{}, domain.ErrEmailAlreadyExists()
	}

	a.ID = r.nextID
	r.nextID++
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	r.byID[a.ID] = a
	r.byEmail[a.Email] = a.ID
	return a, nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return r.byID[id], nil
}

func (r *AccountRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	// Never move the timestamp backwards.
	if a.LastLoginAt != nil && a.LastLoginAt.After(at) {
		return 0, nil
	}
	at2 := at
	a.LastLoginAt = &at2
	r.byID[id] = a
	return 1, nil
}

// ---- directory.AccountRepo ----

func (r *AccountRepo) List(ctx context.Context) ([]domain.AccountSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AccountSummary, 0, len(r.byID))
	for _, a := range r.sortedByID() {
		out = append(out, domain.AccountSummary{ID: a.ID, Name: a.Name, Email: a.Email})
	}
	return out, nil
}

func (r *AccountRepo) UpdateProfile(ctx context.Context, id int64, name, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	if other, exists := r.byEmail[email]; exists && other != id {
		return 0, domain.ErrEmailAlreadyExists()
	}

	delete(r.byEmail, a.Email)
	a.Name = name
	a.Email = email
	r.byID[id] = a
	r.byEmail[email] = id
	return 1, nil
}

func (r *AccountRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	delete(r.byID, id)
	delete(r.byEmail, a.Email)
	return 1, nil
}

// ---- report.AccountRepo ----

func (r *AccountRepo) ListRecent(ctx context.Context, limit int) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedByID()
	// Newest first; IDs break ties the same way the SQL store orders them.
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *AccountRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.byID {
		if !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *AccountRepo) CountLoggedInSince(ctx context.Context, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.byID {
		if a.LastLoginAt != nil && !a.LastLoginAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *AccountRepo) CountAll(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

func (r *AccountRepo) sortedByID() []domain.Account {
	out := make([]domain.Account, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
