package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the public ID of the authenticated caller.
const CtxKeyUserID ctxKey = "user_id"

// WithUserID returns a copy of ctx carrying the caller's public ID.
func WithUserID(ctx context.Context, publicID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, publicID)
}

// UserIDFromContext returns the caller's public ID, or "" for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
