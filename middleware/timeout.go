package middleware

import (
	"context"
	"time"
)

// Timeout returns middleware that enforces a fixed execution deadline.
// When the deadline is exceeded the context is cancelled and the
// interactor should return context.DeadlineExceeded. A non-positive d
// disables the deadline.
func Timeout(d time.Duration) Middleware {
	return func(ctx context.Context, _ *Info, next Handler) error {
		if d > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d)
			defer cancel()
		}
		return next(ctx)
	}
}
