// Package redis implements queue.Enqueuer against a Redis-backed job
// queue. Immediate jobs are pushed onto a per-queue List; delayed jobs go
// to a scheduled Sorted Set scored by run-at epoch, from which the
// external queue's scheduler releases them when due.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	enq := redisq.New(client)
//	d := interq.NewDispatcher(reg, enq)
//
// Only the enqueue half of the queue boundary lives here. Consumption,
// retries, and exhaustion belong to the external worker system.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/instrumentl/interq/id"
	"github.com/instrumentl/interq/queue"
)

// Compile-time interface check.
var _ queue.Enqueuer = (*Enqueuer)(nil)

// Option configures the Enqueuer.
type Option func(*Enqueuer)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Enqueuer) { e.logger = l }
}

// Enqueuer submits jobs to Redis. The caller owns the client lifecycle.
type Enqueuer struct {
	client goredis.Cmdable
	logger *slog.Logger
}

// New creates a Redis-backed Enqueuer.
func New(client goredis.Cmdable, opts ...Option) *Enqueuer {
	e := &Enqueuer{client: client, logger: slog.Default()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// envelope is the wire record stored in Redis around the job payload.
type envelope struct {
	JID        id.ID           `json:"jid"`
	Worker     string          `json:"worker"`
	Queue      string          `json:"queue"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	RunAt      time.Time       `json:"run_at"`
}

// Enqueue stores the job and routes it: due jobs are LPUSH'd onto the
// queue's List, future jobs are ZADD'd onto the scheduled Sorted Set.
func (e *Enqueuer) Enqueue(ctx context.Context, req queue.Request) (string, error) {
	now := time.Now().UTC()
	runAt := req.RunAt(now)
	jid := id.NewJobID()

	env := envelope{
		JID:        jid,
		Worker:     req.Worker,
		Queue:      req.Queue,
		Payload:    req.Payload,
		EnqueuedAt: now,
		RunAt:      runAt,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("interq/redis: marshal envelope: %w", err)
	}

	pipe := e.client.TxPipeline()
	pipe.SAdd(ctx, queuesKey, req.Queue)
	if runAt.After(now) {
		pipe.ZAdd(ctx, scheduledKey, goredis.Z{
			Score:  float64(runAt.UnixMilli()) / 1000,
			Member: data,
		})
	} else {
		pipe.LPush(ctx, queueKey(req.Queue), data)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("interq/redis: enqueue job: %w", err)
	}

	e.logger.Debug("job submitted",
		slog.String("job_id", jid.String()),
		slog.String("queue", req.Queue),
		slog.Time("run_at", runAt),
	)

	return jid.String(), nil
}
