package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextUserKey ctxKey = "accessUser"

// AccessUser is the authenticated identity carried through the request
// context by the auth middleware.
type AccessUser struct {
	LoginID  int64
	WorkerID int64
	Username string
	RolIDs   []int64
}

func ContextWithUser(ctx context.Context, user *AccessUser) context.Context {
	return context.WithValue(ctx, contextUserKey, user)
}

func UserFromContext(ctx context.Context) (*AccessUser, bool) {
	if ctx == nil {
		return nil, false
	}
	user, ok := ctx.Value(contextUserKey).(*AccessUser)
	return user, ok
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if
// duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
