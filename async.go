package interq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/instrumentl/interq/codec"
	"github.com/instrumentl/interq/queue"
)

// defaultWorkerName is the binding name used on enqueue requests when no
// custom worker is registered for the interactor type.
const defaultWorkerName = "interq.entrypoint"

// Dispatcher submits interactor invocations to the external queue.
type Dispatcher struct {
	registry *Registry
	enqueuer queue.Enqueuer
	codec    codec.Codec
	logger   *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithCodec sets the payload codec. Defaults to JSON.
func WithCodec(c codec.Codec) DispatcherOption {
	return func(d *Dispatcher) { d.codec = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

// NewDispatcher creates a Dispatcher over the given registry and queue
// client.
func NewDispatcher(reg *Registry, enq queue.Enqueuer, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		enqueuer: enq,
		codec:    codec.Get(codec.NameJSON),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AsyncCall submits the named interactor for background execution with c
// as its input. The returned Context reflects submission, not completion:
// on success it is a fresh ok copy of the input, and on any enqueue
// failure it is a copy failed with the error text. AsyncCall never
// propagates the enqueue error itself; callers inspect the Context.
func (d *Dispatcher) AsyncCall(ctx context.Context, name string, c *Context) *Context {
	reg, ok := d.registry.Get(name)
	if !ok {
		return d.failed(c, fmt.Errorf("%w: %q", ErrUnknownInteractor, name))
	}

	dispatchOpts := resolveDispatch(c, reg)
	scheduleOpts := resolveSchedule(c, reg)

	payload, err := d.buildPayload(name, c)
	if err != nil {
		return d.failed(c, err)
	}

	req := queue.Request{
		Worker:  workerName(reg),
		Queue:   dispatchOpts.Queue,
		Delay:   scheduleOpts.In,
		At:      scheduleOpts.At,
		Payload: payload,
	}

	jobID, err := d.enqueuer.Enqueue(ctx, req)
	if err != nil {
		d.logger.Error("enqueue rejected",
			slog.String("interactor", name),
			slog.String("queue", req.Queue),
			slog.String("error", err.Error()),
		)
		return d.failed(c, err)
	}

	d.logger.Debug("interactor enqueued",
		slog.String("interactor", name),
		slog.String("job_id", jobID),
		slog.String("queue", req.Queue),
		slog.Duration("delay", req.Delay),
	)

	return c.Copy()
}

// buildPayload merges the interactor identity into the context values and
// strips the locally consumed option keys. The result is string-keyed
// plain data, as the external queue requires.
func (d *Dispatcher) buildPayload(name string, c *Context) ([]byte, error) {
	values := c.Except(KeyDispatchOptions, KeyScheduleOptions).Values()
	values[KeyInteractor] = name

	data, err := d.codec.Encode(values)
	if err != nil {
		return nil, fmt.Errorf("encode payload for %q: %w", name, err)
	}
	return data, nil
}

// failed copies the input and applies the failure transition with the
// error text as payload.
func (d *Dispatcher) failed(c *Context, err error) *Context {
	out := c.Copy()
	out.Fail(err.Error())
	return out
}

// workerName resolves the binding name for enqueue routing. The binding
// itself was capability-checked at registration time.
func workerName(reg *Registration) string {
	if reg.Worker != nil {
		return reg.Worker.Name()
	}
	return defaultWorkerName
}
