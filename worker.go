package interq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/instrumentl/interq/codec"
	"github.com/instrumentl/interq/middleware"
	"github.com/instrumentl/interq/queue"
)

// Entrypoint is the default worker binding: the execution callback the
// external queue invokes with a raw job payload. It resolves the
// originating interactor from the reserved identity key, runs it inline,
// and translates errors through the per-type hooks.
type Entrypoint struct {
	registry *Registry
	codec    codec.Codec
	logger   *slog.Logger
	mw       middleware.Middleware
}

// Compile-time check: Entrypoint satisfies the worker capability.
var _ queue.Worker = (*Entrypoint)(nil)

// EntrypointOption configures an Entrypoint.
type EntrypointOption func(*Entrypoint)

// WithEntrypointCodec sets the payload codec. Must match the dispatcher's.
func WithEntrypointCodec(c codec.Codec) EntrypointOption {
	return func(e *Entrypoint) { e.codec = c }
}

// WithEntrypointLogger sets the structured logger.
func WithEntrypointLogger(l *slog.Logger) EntrypointOption {
	return func(e *Entrypoint) { e.logger = l }
}

// WithMiddleware wraps interactor execution with the given middleware
// chain, outermost first.
func WithMiddleware(mws ...middleware.Middleware) EntrypointOption {
	return func(e *Entrypoint) { e.mw = middleware.Chain(mws...) }
}

// NewEntrypoint creates the default worker binding over a registry.
func NewEntrypoint(reg *Registry, opts ...EntrypointOption) *Entrypoint {
	e := &Entrypoint{
		registry: reg,
		codec:    codec.Get(codec.NameJSON),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name identifies the default binding on enqueue requests.
func (e *Entrypoint) Name() string { return defaultWorkerName }

// Perform executes one job. It decodes the payload, resolves the
// interactor from the reserved identity key (an unresolvable name is a
// configuration error and propagates), strips the key, and runs the
// interactor synchronously with the remaining values as its Context.
//
// When execution returns an error and the registration carries an
// ErrorHandler, the handler owns the outcome: whatever it returns is
// Perform's result. Without a handler the error returns unchanged so the
// queue's own retry machinery takes over.
func (e *Entrypoint) Perform(ctx context.Context, payload []byte) error {
	values, err := e.codec.Decode(payload)
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	name, reg, err := e.resolve(values)
	if err != nil {
		return err
	}
	delete(values, KeyInteractor)
	c := FromMap(values)

	info := &middleware.Info{Interactor: name}
	terminal := func(ctx context.Context) error {
		_, callErr := reg.SyncCall(ctx, c)
		return callErr
	}

	if e.mw != nil {
		err = e.mw(ctx, info, terminal)
	} else {
		err = terminal(ctx)
	}
	if err == nil {
		return nil
	}

	if reg.OnError != nil {
		e.logger.Debug("delegating execution error",
			slog.String("interactor", name),
			slog.String("error", err.Error()),
		)
		return reg.OnError(ctx, c, err)
	}
	return err
}

// RetriesExhausted translates the queue's terminal-failure callback. A
// record with no args, or whose first arg lacks the identity key, is not
// an interq job and is ignored. Otherwise the per-type ExhaustedHandler
// owns the outcome; without one, cause returns so it surfaces as an
// unhandled worker error.
func (e *Entrypoint) RetriesExhausted(ctx context.Context, dead queue.DeadJob, cause error) error {
	if len(dead.Args) == 0 {
		return nil
	}
	first := dead.Args[0]
	if _, ok := first[KeyInteractor]; !ok {
		return nil
	}

	name, reg, err := e.resolve(first)
	if err != nil {
		return err
	}

	if reg.OnExhausted != nil {
		e.logger.Debug("delegating retries exhausted",
			slog.String("interactor", name),
			slog.String("job_id", dead.JobID),
		)
		return reg.OnExhausted(ctx, dead, cause)
	}
	return cause
}

// resolve reads the identity key from a decoded payload and looks up the
// registration. Both failure modes are fatal configuration errors.
func (e *Entrypoint) resolve(values map[string]any) (string, *Registration, error) {
	name, ok := values[KeyInteractor].(string)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("%w (%q)", ErrMissingIdentity, KeyInteractor)
	}
	reg, ok := e.registry.Get(name)
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownInteractor, name)
	}
	return name, reg, nil
}
