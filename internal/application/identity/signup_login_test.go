package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adminboard/account-service/internal/domain"
)

func TestSignup_EmptyFields_ReturnsMissingField(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newSvcForTest(t)

	cases := []struct {
		name, email, password string
	}{
		{"", "a@b.com", "pw"},
		{"Ada", "", "pw"},
		{"Ada", "a@b.com", ""},
	}
	for _, c := range cases {
		_, err := svc.Signup(context.Background(), c.name, c.email, c.password)
		requireErrCode(t, err, "missing_field")
	}
}

func TestSignup_DuplicateEmail_ReturnsConflict_NoInsert(t *testing.T) {
	t.Parallel()

	svc, repo, _, _, _ := newSvcForTest(t)

	if _, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := svc.Signup(context.Background(), "Ada Again", "ada@example.com", "pw2")
	requireErrCode(t, err, "email_already_exists")

	if len(repo.byID) != 1 {
		t.Fatalf("expected account count unchanged, got %d", len(repo.byID))
	}
}

func TestSignup_HashFail_ReturnsHashFailed(t *testing.T) {
	t.Parallel()

	svc, _, hasher, _, _ := newSvcForTest(t)
	hasher.hashFn = func(pw string) (string, error) { return "", errors.New("boom") }

	_, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw")
	requireErrCode(t, err, "hash_failed")
}

func TestSignup_Success_PersistsAndPublishes(t *testing.T) {
	t.Parallel()

	svc, repo, _, _, pub := newSvcForTest(t)
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return created })

	res, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if res.Account.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
	if !res.Account.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at from clock, got %v", res.Account.CreatedAt)
	}
	if got := repo.byID[res.Account.ID].PasswordHash; got != "hash:pw" {
		t.Fatalf("expected hashed credential stored, got %q", got)
	}
	if len(pub.registered) != 1 || pub.registered[0].Email != "ada@example.com" {
		t.Fatalf("expected registered event, got %+v", pub.registered)
	}
}

func TestSignup_PublishFailure_DoesNotFailSignup(t *testing.T) {
	t.Parallel()

	svc, _, _, _, pub := newSvcForTest(t)
	pub.err = errors.New("broker down")

	if _, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("publish failure must not fail signup: %v", err)
	}
}

func TestLogin_EmptyFields_ReturnsMissingField(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newSvcForTest(t)

	_, err := svc.Login(context.Background(), "", "pw")
	requireErrCode(t, err, "missing_field")

	_, err = svc.Login(context.Background(), "a@b.com", "")
	requireErrCode(t, err, "missing_field")
}

func TestLogin_UnknownEmail_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newSvcForTest(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	requireErrCode(t, err, "invalid_credentials")
}

func TestLogin_WrongPassword_InvalidCredentials_NoTouch(t *testing.T) {
	t.Parallel()

	svc, repo, _, _, _ := newSvcForTest(t)
	if _, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	requireErrCode(t, err, "invalid_credentials")

	if len(repo.touched) != 0 {
		t.Fatalf("expected no last_login_at mutation on failed login")
	}
}

func TestLogin_StoreFailure_Propagates(t *testing.T) {
	t.Parallel()

	svc, repo, _, _, _ := newSvcForTest(t)
	repo.getErr = domain.ErrStoreUnavailable(errors.New("connection refused"))

	_, err := svc.Login(context.Background(), "ada@example.com", "pw")
	// a store failure must not be disguised as bad credentials
	requireErrCode(t, err, "store_unavailable")
}

func TestLogin_Success_TouchesLastLogin_IssuesToken(t *testing.T) {
	t.Parallel()

	svc, repo, _, _, _ := newSvcForTest(t)
	if _, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	before := time.Now()
	res, err := svc.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected access token")
	}
	if res.Role != "user" {
		t.Fatalf("expected static role marker, got %q", res.Role)
	}
	if res.Account.LastLoginAt == nil || res.Account.LastLoginAt.Before(before) {
		t.Fatalf("expected last_login_at >= time before call, got %v", res.Account.LastLoginAt)
	}
	if len(repo.touched) != 1 {
		t.Fatalf("expected one last_login_at write, got %d", len(repo.touched))
	}
}

func TestLogin_TouchFailure_LoginStillSucceeds(t *testing.T) {
	t.Parallel()

	svc, repo, _, _, _ := newSvcForTest(t)
	if _, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	repo.touchErr = errors.New("write failed")

	res, err := svc.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("timestamp failure must not fail login: %v", err)
	}
	if res.Account.LastLoginAt != nil {
		t.Fatalf("expected no claimed last_login_at when the write failed")
	}
}

func TestLogin_TouchSkippedByGuard_NoTimestampClaim(t *testing.T) {
	t.Parallel()

	svc, repo, _, _, _ := newSvcForTest(t)
	if _, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	repo.touchSkip = true

	res, err := svc.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("zero-row timestamp write must not fail login: %v", err)
	}
	if res.Account.LastLoginAt != nil {
		t.Fatalf("expected no claimed last_login_at when the store kept the old value")
	}
}

func TestLogin_SignFailure_Propagates(t *testing.T) {
	t.Parallel()

	svc, _, _, signer, _ := newSvcForTest(t)
	if _, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	signer.signErr = errors.New("sign boom")

	_, err := svc.Login(context.Background(), "ada@example.com", "pw")
	if err == nil {
		t.Fatalf("expected error")
	}
}
