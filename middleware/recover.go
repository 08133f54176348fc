package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Recover returns middleware that recovers from panics in the handler
// chain. Panics are converted to errors and logged with a stack trace, so
// the worker's error translation sees them like any other failure.
func Recover(logger *slog.Logger) Middleware {
	return func(ctx context.Context, info *Info, next Handler) (retErr error) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("interactor panicked",
					slog.String("interactor", info.Interactor),
					slog.Any("panic", r),
					slog.String("stack", stack),
				)
				retErr = fmt.Errorf("panic in interactor %s: %v", info.Interactor, r)
			}
		}()
		return next(ctx)
	}
}
