// Package interq turns synchronous interactors (single-purpose command
// objects that mutate a Context) into background jobs on an external queue.
//
// interq owns none of the queue machinery. It serializes an interactor's
// Context into a string-keyed payload, enqueues it with queue and delay
// options, and on the worker side reconstructs the interactor from the
// payload and runs it inline. Retry timing, persistence, and the worker
// process model all belong to the external queue behind the queue.Enqueuer
// and queue.Worker boundary.
//
// # Quick Start
//
//	reg := interq.NewRegistry()
//	reg.Register("charge-card", func() interq.Interactor { return &ChargeCard{} })
//
//	d := interq.NewDispatcher(reg, redisq.New(client))
//	out := d.AsyncCall(ctx, "charge-card", c)
//	if out.Failed() {
//	    // enqueue was rejected; the failure payload carries the error text
//	}
//
// On the worker side the external queue invokes interq.Entrypoint, the
// default worker binding, with the raw payload bytes. Interactor types may
// register optional error and retries-exhausted handlers; absent handlers
// mean errors propagate to the queue's own retry machinery.
package interq
