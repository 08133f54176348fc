// Package middleware provides composable middleware for interactor
// execution on the worker side. Middleware wraps the synchronous call and
// can modify execution (recover from panics, log, enforce deadlines).
package middleware

import "context"

// Info describes the invocation being executed.
type Info struct {
	// Interactor is the identity string the job was enqueued under.
	Interactor string
}

// Handler is the terminal function that executes the interactor.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler with cross-cutting logic. Middleware MUST
// call next to continue the chain (unless short-circuiting on error).
type Middleware func(ctx context.Context, info *Info, next Handler) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover) executes as:
//
//	logging → recover → handler
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, info *Info, next Handler) error {
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, info, prev)
			}
		}
		return h(ctx)
	}
}
