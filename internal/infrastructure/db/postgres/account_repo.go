package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adminboard/account-service/internal/domain"
)

// AccountRepo is the single persistence adapter for the users table.
// Every method is one statement; emails are stored and compared
// case-sensitively, exactly as given (whitespace trimmed only).
type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// ---------- helpers ----------

func toDomainAccount(ar accountRow) domain.Account {
	return domain.Account{
		ID:           ar.ID,
		Name:         ar.Name,
		Email:        ar.Email,
		PasswordHash: ar.PasswordHash,
		CreatedAt:    ar.CreatedAt,
		LastLoginAt:  ar.LastLoginAt,
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isUniqueViolation reports a Postgres unique-constraint failure (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ---------- identity.AccountRepo ----------

func (r *AccountRepo) CountByEmail(ctx context.Context, email string) (int, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return 0, domain.ErrMissingField("email")
	}

	const q = `SELECT COUNT(1) FROM users WHERE email = $1;`

	var n int
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&n); err != nil {
		return 0, domain.ErrStoreUnavailable(err)
	}
	return n, nil
}

func (r *AccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	if a.Name == "" {
		return domain.Account{}, domain.ErrMissingField("name")
	}
	if a.Email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}
	if a.PasswordHash == "" {
		return domain.Account{}, domain.ErrMissingField("password")
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	const q = `
INSERT INTO users (name, email, password, created_at)
VALUES ($1,$2,$3,$4)
RETURNING id;
`
	if err := r.db.QueryRowContext(ctx, q, a.Name, a.Email, a.PasswordHash, a.CreatedAt).Scan(&a.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.ErrEmailAlreadyExists()
		}
		return domain.Account{}, domain.ErrStoreUnavailable(err)
	}
	return a, nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT id, name, email, password, created_at, last_login_at
FROM users
WHERE email = $1
LIMIT 1;
`
	var ar accountRow
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&ar.ID, &ar.Name, &ar.Email, &ar.PasswordHash, &ar.CreatedAt, &ar.LastLoginAt,
	)
	if err != nil {
		if isNoRows(err) {
			return domain.Account{}, domain.ErrAccountNotFound()
		}
		return domain.Account{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainAccount(ar), nil
}

func (r *AccountRepo) TouchLastLogin(ctx context.Context, accountID int64, at time.Time) (int64, error) {
	// The guard keeps last_login_at monotonically non-decreasing even if two
	// logins race with skewed clocks.
	const q = `
UPDATE users
SET last_login_at = $2
WHERE id = $1
  AND (last_login_at IS NULL OR last_login_at <= $2);
`
	res, err := r.db.ExecContext(ctx, q, accountID, at)
	if err != nil {
		return 0, domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// ---------- directory.AccountRepo ----------

// List returns all accounts in insertion order (by id); the credential
// column is never projected.
func (r *AccountRepo) List(ctx context.Context) ([]domain.AccountSummary, error) {
	const q = `
SELECT id, name, email
FROM users
ORDER BY id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	var out []domain.AccountSummary
	for rows.Next() {
		var s domain.AccountSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *AccountRepo) UpdateProfile(ctx context.Context, accountID int64, name, email string) (int64, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return 0, domain.ErrMissingField("name")
	}
	if email == "" {
		return 0, domain.ErrMissingField("email")
	}

	const q = `
UPDATE users
SET name = $2,
    email = $3
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, accountID, name, email)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists()
		}
		return 0, domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *AccountRepo) Delete(ctx context.Context, accountID int64) (int64, error) {
	const q = `DELETE FROM users WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, accountID)
	if err != nil {
		return 0, domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// ---------- report.AccountRepo ----------

func (r *AccountRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	const q = `SELECT COUNT(1) FROM users WHERE created_at >= $1;`

	var n int
	if err := r.db.QueryRowContext(ctx, q, since).Scan(&n); err != nil {
		return 0, domain.ErrStoreUnavailable(err)
	}
	return n, nil
}

func (r *AccountRepo) CountLoggedInSince(ctx context.Context, since time.Time) (int, error) {
	const q = `SELECT COUNT(1) FROM users WHERE last_login_at IS NOT NULL AND last_login_at >= $1;`

	var n int
	if err := r.db.QueryRowContext(ctx, q, since).Scan(&n); err != nil {
		return 0, domain.ErrStoreUnavailable(err)
	}
	return n, nil
}

func (r *AccountRepo) CountAll(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(1) FROM users;`

	var n int
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, domain.ErrStoreUnavailable(err)
	}
	return n, nil
}

func (r *AccountRepo) ListRecent(ctx context.Context, limit int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	const q = `
SELECT id, name, email, password, created_at, last_login_at
FROM users
ORDER BY created_at DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		var ar accountRow
		if err := rows.Scan(&ar.ID, &ar.Name, &ar.Email, &ar.PasswordHash, &ar.CreatedAt, &ar.LastLoginAt); err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, toDomainAccount(ar))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}
