package middleware

import "context"

type ctxKey string

const (
	ctxAccountID ctxKey = "account_id"
	ctxRole      ctxKey = "role"
)

func WithUser(ctx context.Context, accountID int64, role string) context.Context {
	ctx = context.WithValue(ctx, ctxAccountID, accountID)
	ctx = context.WithValue(ctx, ctxRole, role)
	return ctx
}

func AccountIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(ctxAccountID).(int64)
	return v, ok && v > 0
}

func RoleFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxRole).(string)
	return v, ok && v != ""
}
