package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcryptMinCostForTests)

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash must not equal plaintext")
	}

	if err := h.Compare(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestBcryptHasher_DistinctHashesPerCall(t *testing.T) {
	h := NewBcryptHasher(bcryptMinCostForTests)

	h1, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ")
	}
}

func TestNewBcryptHasher_CostClampedToSupportedRange(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"zero falls back to default", 0, bcrypt.DefaultCost},
		{"negative falls back to default", -3, bcrypt.DefaultCost},
		{"above max falls back to default", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{"min cost kept as-is", bcrypt.MinCost, bcrypt.MinCost},
		{"mid-range kept as-is", 12, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if h := NewBcryptHasher(tc.in); h.cost != tc.want {
				t.Fatalf("cost %d: expected %d, got %d", tc.in, tc.want, h.cost)
			}
		})
	}
}

// Lowest cost keeps the test suite fast.
const bcryptMinCostForTests = 4
