package http

import (
	"context"

	"lifeline/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

func withSession(ctx context.Context, sess domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the caller's session; anonymous if none was loaded.
func SessionFromContext(ctx context.Context) domain.Session {
	sess, _ := ctx.Value(sessionKey).(domain.Session)
	return sess
}
