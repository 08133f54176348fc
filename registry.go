package interq

import (
	"context"
	"fmt"
	"sync"

	"github.com/instrumentl/interq/queue"
)

// Interactor is a single-purpose command object. Call runs the unit of
// work against c, mutating it as it goes. A returned error is the
// "uncaught exception" of the invocation; an expected business failure is
// expressed by failing the Context instead.
type Interactor interface {
	Call(ctx context.Context, c *Context) error
}

// Factory constructs a fresh Interactor instance for one invocation.
type Factory func() Interactor

// ErrorHandler is the optional per-type hook invoked when an interactor
// returns an error during worker-side execution. Its return value becomes
// the outcome of the job: nil swallows the error, non-nil surfaces to the
// external queue's retry machinery.
type ErrorHandler func(ctx context.Context, c *Context, err error) error

// ExhaustedHandler is the optional per-type hook invoked when the external
// queue gives up retrying a job. Its return value becomes the outcome of
// the exhaustion callback.
type ExhaustedHandler func(ctx context.Context, dead queue.DeadJob, cause error) error

// Registration is the per-interactor-type configuration record. All
// fields except Name and New are optional; absent fields fall back to
// framework defaults at dispatch or execution time.
type Registration struct {
	Name string
	New  Factory

	// Worker is a custom worker binding. Nil means the default Entrypoint.
	Worker queue.Worker

	// DefaultDispatch and DefaultSchedule are the class-level option
	// defaults, overridden by per-call values in the Context.
	DefaultDispatch *DispatchOptions
	DefaultSchedule *ScheduleOptions

	OnError     ErrorHandler
	OnExhausted ExhaustedHandler
}

// RegisterOption configures a Registration.
type RegisterOption func(*Registration) error

// WithWorker binds a custom worker type to the interactor. The value must
// implement queue.Worker; Register rejects anything else immediately,
// naming the offending type.
func WithWorker(w any) RegisterOption {
	return func(r *Registration) error {
		worker, ok := w.(queue.Worker)
		if !ok {
			return fmt.Errorf("%w: %q configured with %T", ErrInvalidWorkerBinding, r.Name, w)
		}
		r.Worker = worker
		return nil
	}
}

// WithDispatchOptions sets the class-level default queue routing.
func WithDispatchOptions(opts DispatchOptions) RegisterOption {
	return func(r *Registration) error {
		r.DefaultDispatch = &opts
		return nil
	}
}

// WithScheduleOptions sets the class-level default schedule.
func WithScheduleOptions(opts ScheduleOptions) RegisterOption {
	return func(r *Registration) error {
		r.DefaultSchedule = &opts
		return nil
	}
}

// WithErrorHandler sets the per-type execution error hook.
func WithErrorHandler(h ErrorHandler) RegisterOption {
	return func(r *Registration) error {
		r.OnError = h
		return nil
	}
}

// WithExhaustedHandler sets the per-type retries-exhausted hook.
func WithExhaustedHandler(h ExhaustedHandler) RegisterOption {
	return func(r *Registration) error {
		r.OnExhausted = h
		return nil
	}
}

// Registry maps interactor identity strings to their configuration
// records. It is safe for concurrent use. Registrations are expected at
// startup; lookups happen on every dispatch and execution.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Registration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Registration)}
}

// Register associates name with a factory and optional configuration.
// Registering an existing name replaces it. The only eager validation is
// the worker-binding capability check; everything else surfaces lazily.
func (r *Registry) Register(name string, factory Factory, opts ...RegisterOption) error {
	if factory == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, name)
	}

	reg := &Registration{Name: name, New: factory}
	for _, opt := range opts {
		if err := opt(reg); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = reg
	return nil
}

// Get returns the registration for name.
func (r *Registry) Get(name string) (*Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[name]
	return reg, ok
}

// Names returns all registered identity strings.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}
