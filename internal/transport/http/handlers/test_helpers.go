package http_handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adminboard/account-service/internal/application/directory"
	"github.com/adminboard/account-service/internal/application/identity"
	"github.com/adminboard/account-service/internal/application/report"
	"github.com/adminboard/account-service/internal/infrastructure/memory"
	"github.com/adminboard/account-service/internal/infrastructure/metrics"
	"github.com/adminboard/account-service/internal/infrastructure/security"
	"github.com/adminboard/account-service/internal/transport/http/middleware"
	"github.com/adminboard/account-service/internal/transport/http/response"
	"github.com/adminboard/account-service/internal/transport/http/router"
)

// testEnv wires the full HTTP stack over the in-memory store.
type testEnv struct {
	srv      http.Handler
	accounts *memory.AccountRepo
	signer   *security.JWTSigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	accounts := memory.NewAccountRepo()
	hasher := security.NewBcryptHasher(4) // min cost, tests only
	signer := security.NewJWTSigner("test-secret", "account-service-test")
	pub := memory.NewNoopPublisher()

	identitySvc := identity.NewService(accounts, hasher, signer, pub, identity.Config{AccessTTL: time.Minute})
	directorySvc := directory.NewService(accounts, pub)
	reportSvc := report.NewService(accounts, metrics.NewStaticProvider(), nil, nil)

	srv, err := router.New(router.Deps{
		Health:    NewHealthHandler(nil, nil, "noop"),
		Identity:  NewIdentityHandler(identitySvc),
		Directory: NewDirectoryHandler(directorySvc),
		Report:    NewReportHandler(reportSvc),
		AuthMW:    middleware.Auth(signer, response.WriteError),
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	return &testEnv{srv: srv, accounts: accounts, signer: signer}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	e.srv.ServeHTTP(rr, req)
	return rr
}

func mustReadJSON(t *testing.T, r io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode json failed; body=%s err=%v", string(raw), err)
	}
}

func newRawRequest(method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

// errCode pulls error.code out of an error envelope.
func errCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	mustReadJSON(t, rr.Body, &body)
	return body.Error.Code
}
