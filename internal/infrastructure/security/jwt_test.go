package security

import (
	"testing"
	"time"

	"github.com/adminboard/account-service/internal/domain"
)

func TestJWTSigner_SignVerify_Roundtrip(t *testing.T) {
	s := NewJWTSigner("test-secret", "account-service")

	tok, err := s.SignAccessToken(7, "user", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := s.VerifyAccessToken(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.AccountID != 7 {
		t.Fatalf("expected account id 7, got %d", claims.AccountID)
	}
	if claims.Role != "user" {
		t.Fatalf("expected role user, got %q", claims.Role)
	}
	if claims.Exp.Before(time.Now()) {
		t.Fatalf("expected future expiry, got %v", claims.Exp)
	}
}

func TestJWTSigner_Expired(t *testing.T) {
	s := NewJWTSigner("test-secret", "account-service")

	tok, err := s.SignAccessToken(7, "user", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = s.VerifyAccessToken(tok)
	if !domain.Is(err, "token_expired") {
		t.Fatalf("expected token_expired, got %v", err)
	}
}

func TestJWTSigner_WrongSecret(t *testing.T) {
	good := NewJWTSigner("secret-a", "account-service")
	evil := NewJWTSigner("secret-b", "account-service")

	tok, err := evil.SignAccessToken(7, "user", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = good.VerifyAccessToken(tok)
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWTSigner_Garbage(t *testing.T) {
	s := NewJWTSigner("test-secret", "account-service")

	_, err := s.VerifyAccessToken("not-a-token")
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}
