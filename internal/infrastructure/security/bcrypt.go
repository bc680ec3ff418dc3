package security

import (
	"github.com/adminboard/account-service/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher backs the identity service's Hasher port. Accounts store
// only the salted bcrypt digest; the plaintext never leaves Hash/Compare.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher clamps the work factor into bcrypt's supported range.
// Zero (unset config) and out-of-range values fall back to the library
// default instead of making every signup fail at request time.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns nil only when password matches the stored digest.
// Callers map any non-nil error to invalid credentials; the distinction
// between a mismatch and a malformed digest must not leak to clients.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
