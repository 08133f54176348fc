package interq

import (
	"testing"
	"time"
)

func TestResolveDispatch(t *testing.T) {
	classDefault := &DispatchOptions{Queue: "mailers"}

	tests := []struct {
		name      string
		ctxValue  any
		reg       *Registration
		wantQueue string
	}{
		{"system default", nil, &Registration{}, "default"},
		{"class default", nil, &Registration{DefaultDispatch: classDefault}, "mailers"},
		{"explicit wins", DispatchOptions{Queue: "urgent"}, &Registration{DefaultDispatch: classDefault}, "urgent"},
		{"explicit pointer", &DispatchOptions{Queue: "urgent"}, &Registration{}, "urgent"},
		{"explicit empty queue falls to default name", DispatchOptions{}, &Registration{DefaultDispatch: classDefault}, "default"},
		{"wrong type ignored", "not options", &Registration{DefaultDispatch: classDefault}, "mailers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext()
			if tt.ctxValue != nil {
				c.Set(KeyDispatchOptions, tt.ctxValue)
			}
			got := resolveDispatch(c, tt.reg)
			if got.Queue != tt.wantQueue {
				t.Errorf("Queue = %q, want %q", got.Queue, tt.wantQueue)
			}
		})
	}
}

func TestResolveSchedule(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	classDefault := &ScheduleOptions{In: time.Minute}

	tests := []struct {
		name     string
		ctxValue any
		reg      *Registration
		wantIn   time.Duration
		wantAt   time.Time
	}{
		{"zero default", nil, &Registration{}, 0, time.Time{}},
		{"class default", nil, &Registration{DefaultSchedule: classDefault}, time.Minute, time.Time{}},
		{"explicit delay wins", ScheduleOptions{In: 5 * time.Second}, &Registration{DefaultSchedule: classDefault}, 5 * time.Second, time.Time{}},
		{"explicit absolute time", ScheduleOptions{At: at}, &Registration{}, 0, at},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext()
			if tt.ctxValue != nil {
				c.Set(KeyScheduleOptions, tt.ctxValue)
			}
			got := resolveSchedule(c, tt.reg)
			if got.In != tt.wantIn {
				t.Errorf("In = %v, want %v", got.In, tt.wantIn)
			}
			if !got.At.Equal(tt.wantAt) {
				t.Errorf("At = %v, want %v", got.At, tt.wantAt)
			}
		})
	}
}
