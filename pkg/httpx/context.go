package httpx

import "context"

type ctxKey string

const (
	// CtxKeySubject holds the token subject (account email).
	CtxKeySubject ctxKey = "subject"
	// CtxKeyClaims holds the full jwtx.Claims for handlers that need more
	// than the subject.
	CtxKeyClaims ctxKey = "claims"
)

// SubjectFromCtx returns the authenticated subject email, or "" when the
// request did not pass through AuthnMiddleware.
func SubjectFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySubject).(string); ok {
		return v
	}
	return ""
}
