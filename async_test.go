package interq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/instrumentl/interq"
	"github.com/instrumentl/interq/queue/memory"
)

func newDispatcher(t *testing.T) (*interq.Dispatcher, *interq.Registry, *memory.Enqueuer) {
	t.Helper()
	reg := interq.NewRegistry()
	enq := memory.New()
	return interq.NewDispatcher(reg, enq), reg, enq
}

func decodePayload(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return m
}

func TestAsyncCall_DefaultsQueueAndDelay(t *testing.T) {
	d, reg, enq := newDispatcher(t)
	if err := reg.Register("adder", func() interq.Interactor { return adder{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	c := interq.NewContext()
	c.Set("a", 1)

	out := d.AsyncCall(context.Background(), "adder", c)
	if out.Failed() {
		t.Fatalf("unexpected failure: %v", out.Failure())
	}

	reqs := enq.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 enqueue, got %d", len(reqs))
	}
	req := reqs[0]
	if req.Queue != "default" {
		t.Errorf("Queue = %q, want %q", req.Queue, "default")
	}
	if req.Delay != 0 {
		t.Errorf("Delay = %v, want 0", req.Delay)
	}
	if !req.At.IsZero() {
		t.Errorf("At = %v, want zero", req.At)
	}
}

func TestAsyncCall_ScheduleDelay(t *testing.T) {
	d, reg, enq := newDispatcher(t)
	if err := reg.Register("adder", func() interq.Interactor { return adder{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	c := interq.NewContext()
	c.Set(interq.KeyScheduleOptions, interq.ScheduleOptions{In: 90 * time.Second})

	out := d.AsyncCall(context.Background(), "adder", c)
	if out.Failed() {
		t.Fatalf("unexpected failure: %v", out.Failure())
	}
	if got := enq.Requests()[0].Delay; got != 90*time.Second {
		t.Errorf("Delay = %v, want 90s", got)
	}
}

func TestAsyncCall_ClassDefaultsApply(t *testing.T) {
	d, reg, enq := newDispatcher(t)
	err := reg.Register("adder", func() interq.Interactor { return adder{} },
		interq.WithDispatchOptions(interq.DispatchOptions{Queue: "math"}),
		interq.WithScheduleOptions(interq.ScheduleOptions{In: time.Minute}),
	)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	d.AsyncCall(context.Background(), "adder", interq.NewContext())

	req := enq.Requests()[0]
	if req.Queue != "math" {
		t.Errorf("Queue = %q, want %q", req.Queue, "math")
	}
	if req.Delay != time.Minute {
		t.Errorf("Delay = %v, want 1m", req.Delay)
	}
}

func TestAsyncCall_ExplicitOverridesClassDefault(t *testing.T) {
	d, reg, enq := newDispatcher(t)
	err := reg.Register("adder", func() interq.Interactor { return adder{} },
		interq.WithDispatchOptions(interq.DispatchOptions{Queue: "math"}),
	)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	c := interq.NewContext()
	c.Set(interq.KeyDispatchOptions, interq.DispatchOptions{Queue: "urgent"})

	d.AsyncCall(context.Background(), "adder", c)

	if got := enq.Requests()[0].Queue; got != "urgent" {
		t.Errorf("Queue = %q, want %q", got, "urgent")
	}
}

func TestAsyncCall_PayloadShape(t *testing.T) {
	d, reg, enq := newDispatcher(t)
	if err := reg.Register("adder", func() interq.Interactor { return adder{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	c := interq.NewContext()
	c.Set("x", 1)
	c.Set(interq.KeyDispatchOptions, interq.DispatchOptions{Queue: "urgent"})
	c.Set(interq.KeyScheduleOptions, interq.ScheduleOptions{In: time.Second})

	d.AsyncCall(context.Background(), "adder", c)

	payload := decodePayload(t, enq.Requests()[0].Payload)
	if _, ok := payload[interq.KeyDispatchOptions]; ok {
		t.Error("payload contains dispatch options key")
	}
	if _, ok := payload[interq.KeyScheduleOptions]; ok {
		t.Error("payload contains schedule options key")
	}
	identity, ok := payload[interq.KeyInteractor].(string)
	if !ok {
		t.Fatalf("identity is %T, want string", payload[interq.KeyInteractor])
	}
	if identity != "adder" {
		t.Errorf("identity = %q, want %q", identity, "adder")
	}
	if v, ok := payload["x"].(float64); !ok || v != 1 {
		t.Errorf("payload x = %v, want 1", payload["x"])
	}
}

func TestAsyncCall_SuccessReturnsFreshCopy(t *testing.T) {
	d, reg, _ := newDispatcher(t)
	if err := reg.Register("adder", func() interq.Interactor { return adder{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	c := interq.NewContext()
	c.Set("x", 1)
	c.Set(interq.KeyDispatchOptions, interq.DispatchOptions{Queue: "urgent"})

	out := d.AsyncCall(context.Background(), "adder", c)
	if out == c {
		t.Error("expected a fresh context, got the input")
	}
	if !out.Ok() {
		t.Fatalf("expected ok context, failure: %v", out.Failure())
	}
	// Submission does not run the interactor.
	if _, ok := out.Get("sum"); ok {
		t.Error("interactor ran at enqueue time")
	}
	// The returned context reflects the full original input, option keys
	// included; only the wire payload strips them.
	if v := out.Value("x"); v != 1 {
		t.Errorf("x = %v, want 1", v)
	}
	if _, ok := out.Get(interq.KeyDispatchOptions); !ok {
		t.Error("returned context lost the dispatch options key")
	}
}

func TestAsyncCall_EnqueueFailureMasked(t *testing.T) {
	d, reg, enq := newDispatcher(t)
	if err := reg.Register("adder", func() interq.Interactor { return adder{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	enq.FailWith(errors.New("boom"))

	c := interq.NewContext()
	c.Set("x", 1)

	out := d.AsyncCall(context.Background(), "adder", c)
	if !out.Failed() {
		t.Fatal("expected failed context")
	}
	if got := out.Failure(); got != "boom" {
		t.Errorf("Failure() = %v, want %q", got, "boom")
	}
	// The input context itself is untouched.
	if c.Failed() {
		t.Error("input context was mutated")
	}
}

func TestAsyncCall_UnregisteredName(t *testing.T) {
	d, _, enq := newDispatcher(t)

	out := d.AsyncCall(context.Background(), "ghost", interq.NewContext())
	if !out.Failed() {
		t.Fatal("expected failed context for unregistered interactor")
	}
	if enq.Len() != 0 {
		t.Error("nothing should have been enqueued")
	}
}
