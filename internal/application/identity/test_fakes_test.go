package identity

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/adminboard/account-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeAccountRepo struct {
	mu sync.Mutex

	nextID  int64
	byID    map[int64]domain.Account
	byEmail map[string]int64

	// injected errors (if set, method returns error)
	countErr  error
	createErr error
	getErr    error
	touchErr  error

	// touchSkip makes TouchLastLogin report zero affected rows without an
	// error, like the store's monotonic guard rejecting an older timestamp.
	touchSkip bool

	touched []struct {
		id int64
		at time.Time
	}
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		nextID:  1,
		byID:    map[int64]domain.Account{},
		byEmail: map[string]int64{},
	}
}

func (f *fakeAccountRepo) CountByEmail(ctx context.Context, email string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.countErr != nil {
		return 0, f.countErr
	}
	if _, ok := f.byEmail[email]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeAccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.Account{}, f.createErr
	}
	if _, ok := f.byEmail[a.Email]; ok {
		return domain.Account{}, domain.ErrEmailAlreadyExists()
	}
	a.ID = f.nextID
	f.nextID++
	f.byID[a.ID] = a
	f.byEmail[a.Email] = a.ID
	return a, nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Account{}, f.getErr
	}
	id, ok := f.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return f.byID[id], nil
}

func (f *fakeAccountRepo) TouchLastLogin(ctx context.Context, accountID int64, at time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.touchErr != nil {
		return 0, f.touchErr
	}
	if f.touchSkip {
		return 0, nil
	}
	a, ok := f.byID[accountID]
	if !ok {
		return 0, nil
	}
	ts := at
	a.LastLoginAt = &ts
	f.byID[accountID] = a
	f.touched = append(f.touched, struct {
		id int64
		at time.Time
	}{accountID, at})
	return 1, nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeSigner struct {
	signErr error
	signed  int
}

func (f *fakeSigner) SignAccessToken(accountID int64, role string, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	f.signed++
	return fmt.Sprintf("token-%d-%s", accountID, role), nil
}

func (f *fakeSigner) VerifyAccessToken(token string) (TokenClaims, error) {
	return TokenClaims{}, domain.ErrTokenInvalid()
}

type fakePublisher struct {
	mu         sync.Mutex
	err        error
	registered []AccountRegisteredEvent
}

func (f *fakePublisher) PublishAccountRegistered(ctx context.Context, evt AccountRegisteredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, evt)
	return nil
}

func newSvcForTest(t *testing.T) (*Service, *fakeAccountRepo, *fakeHasher, *fakeSigner, *fakePublisher) {
	t.Helper()

	repo := newFakeAccountRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	pub := &fakePublisher{}

	svc := NewService(repo, hasher, signer, pub, Config{AccessTTL: 15 * time.Minute})
	return svc, repo, hasher, signer, pub
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code=%q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code=%q, got err=%v", code, err)
	}
}
