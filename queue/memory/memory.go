// Package memory implements queue.Enqueuer in memory. Intended for unit
// testing and development; submissions are recorded, never executed.
package memory

import (
	"context"
	"sync"

	"github.com/instrumentl/interq/id"
	"github.com/instrumentl/interq/queue"
)

// Ensure Enqueuer implements the boundary interface at compile time.
var _ queue.Enqueuer = (*Enqueuer)(nil)

// Enqueuer records enqueue requests. Safe for concurrent use.
type Enqueuer struct {
	mu       sync.Mutex
	requests []queue.Request
	failWith error
}

// New returns a new empty Enqueuer.
func New() *Enqueuer {
	return &Enqueuer{}
}

// Enqueue records the request and returns a fresh job id, unless a
// failure has been injected with FailWith.
func (e *Enqueuer) Enqueue(_ context.Context, req queue.Request) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.failWith != nil {
		return "", e.failWith
	}
	e.requests = append(e.requests, req)
	return id.NewJobID().String(), nil
}

// FailWith makes every subsequent Enqueue return err. Pass nil to clear.
func (e *Enqueuer) FailWith(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failWith = err
}

// Requests returns a copy of all recorded requests.
func (e *Enqueuer) Requests() []queue.Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]queue.Request, len(e.requests))
	copy(out, e.requests)
	return out
}

// Len returns the number of recorded requests.
func (e *Enqueuer) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.requests)
}
