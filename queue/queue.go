// Package queue defines the boundary to the external background-job
// system. interq only ever touches the queue at three points: enqueue
// (Enqueuer), execute (Worker.Perform), and terminal failure
// (Worker.RetriesExhausted). Everything between those points, including
// persistence, retry timing, and the worker process model, belongs to
// the external system.
package queue

import (
	"context"
	"time"
)

// Request is one enqueue submission: a routed, optionally delayed,
// string-keyed plain-data payload.
type Request struct {
	// Worker names the worker binding that will execute the job.
	Worker string

	// Queue is the target queue name.
	Queue string

	// Delay postpones the first execution relative to enqueue time.
	Delay time.Duration

	// At schedules the first execution at an absolute time. Delay wins
	// when both are set.
	At time.Time

	// Payload is the encoded job payload.
	Payload []byte
}

// RunAt resolves the effective first-execution time relative to now.
func (r Request) RunAt(now time.Time) time.Time {
	if r.Delay > 0 {
		return now.Add(r.Delay)
	}
	if !r.At.IsZero() {
		return r.At
	}
	return now
}

// Enqueuer submits jobs to the external queue. Enqueue returns the
// queue-assigned job id, or an error when the submission is rejected.
type Enqueuer interface {
	Enqueue(ctx context.Context, req Request) (string, error)
}

// Worker is the execution capability the external queue invokes. Custom
// worker bindings must implement it in full; interq rejects anything
// else at registration time.
type Worker interface {
	// Name identifies the worker binding on enqueue requests.
	Name() string

	// Perform executes one job. A returned error hands the job back to
	// the queue's retry machinery.
	Perform(ctx context.Context, payload []byte) error

	// RetriesExhausted is invoked once when the queue gives up retrying
	// a job. A returned error surfaces as an unhandled worker error.
	RetriesExhausted(ctx context.Context, dead DeadJob, cause error) error
}

// DeadJob is the terminal record the external queue hands to
// RetriesExhausted after the final failed attempt.
type DeadJob struct {
	JobID  string           `json:"jid"`
	Worker string           `json:"worker"`
	Queue  string           `json:"queue"`
	Args   []map[string]any `json:"args"`
	Error  string           `json:"error"`

	FailedAt time.Time `json:"failed_at"`
}
