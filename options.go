package interq

import "time"

// Reserved Context keys. The identity key travels on the wire; the two
// options keys are consumed at dispatch time and stripped from the payload.
const (
	KeyInteractor      = "interactor_class"
	KeyDispatchOptions = "dispatch_options"
	KeyScheduleOptions = "schedule_options"
)

// DefaultQueue is the queue used when neither the Context nor the
// registration names one.
const DefaultQueue = "default"

// DispatchOptions routes a job to a queue.
type DispatchOptions struct {
	// Queue is the target queue name. Empty means DefaultQueue.
	Queue string
}

// ScheduleOptions delays a job's first execution. Zero values mean run
// immediately. When both are set, In wins.
type ScheduleOptions struct {
	// In is a relative delay from enqueue time.
	In time.Duration

	// At is an absolute execution time.
	At time.Time
}

// DefaultDispatchOptions returns the system default routing.
func DefaultDispatchOptions() DispatchOptions {
	return DispatchOptions{Queue: DefaultQueue}
}

// resolveDispatch applies the resolution order: explicit per-call value in
// the Context, then the registration default, then the system default.
func resolveDispatch(c *Context, reg *Registration) DispatchOptions {
	if v, ok := c.Get(KeyDispatchOptions); ok {
		if opts, ok := asDispatchOptions(v); ok {
			if opts.Queue == "" {
				opts.Queue = DefaultQueue
			}
			return opts
		}
	}
	if reg != nil && reg.DefaultDispatch != nil {
		opts := *reg.DefaultDispatch
		if opts.Queue == "" {
			opts.Queue = DefaultQueue
		}
		return opts
	}
	return DefaultDispatchOptions()
}

// resolveSchedule applies the same resolution order for scheduling. The
// zero ScheduleOptions means no delay.
func resolveSchedule(c *Context, reg *Registration) ScheduleOptions {
	if v, ok := c.Get(KeyScheduleOptions); ok {
		if opts, ok := asScheduleOptions(v); ok {
			return opts
		}
	}
	if reg != nil && reg.DefaultSchedule != nil {
		return *reg.DefaultSchedule
	}
	return ScheduleOptions{}
}

func asDispatchOptions(v any) (DispatchOptions, bool) {
	switch o := v.(type) {
	case DispatchOptions:
		return o, true
	case *DispatchOptions:
		if o != nil {
			return *o, true
		}
	}
	return DispatchOptions{}, false
}

func asScheduleOptions(v any) (ScheduleOptions, bool) {
	switch o := v.(type) {
	case ScheduleOptions:
		return o, true
	case *ScheduleOptions:
		if o != nil {
			return *o, true
		}
	}
	return ScheduleOptions{}, false
}
