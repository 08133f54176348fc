package interq

import "sort"

// Context is the mutable data bag passed through an interactor invocation.
// Keys are strings, values are plain serializable data, and insertion order
// is preserved. A Context starts in the ok state and may take a single
// terminal transition to failed via Fail; once failed it stops accepting
// writes.
//
// Context is not safe for concurrent use. Each invocation operates on its
// own value.
type Context struct {
	keys   []string
	values map[string]any

	failed  bool
	failure any
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// FromMap builds a Context from a plain map. Go maps carry no order, so
// keys are inserted in sorted order for determinism.
func FromMap(m map[string]any) *Context {
	c := NewContext()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.Set(k, m[k])
	}
	return c
}

// Set stores a value under key, appending the key if new. Writes on a
// failed Context are ignored.
func (c *Context) Set(key string, value any) {
	if c.failed {
		return
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value for key and whether it was present.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Value returns the value for key, or nil if absent.
func (c *Context) Value(key string) any {
	return c.values[key]
}

// Delete removes key. Deletes on a failed Context are ignored.
func (c *Context) Delete(key string) {
	if c.failed {
		return
	}
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (c *Context) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of keys.
func (c *Context) Len() int { return len(c.keys) }

// Values returns a plain-map snapshot of the Context.
func (c *Context) Values() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Merge returns a new Context with m's entries applied over c. Existing
// keys keep their position; new keys append in sorted order.
func (c *Context) Merge(m map[string]any) *Context {
	out := c.Copy()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Set(k, m[k])
	}
	return out
}

// Except returns a new Context without the given keys.
func (c *Context) Except(keys ...string) *Context {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := NewContext()
	for _, k := range c.keys {
		if _, skip := drop[k]; skip {
			continue
		}
		out.Set(k, c.values[k])
	}
	out.failed = c.failed
	out.failure = c.failure
	return out
}

// Copy returns a new Context with the same entries and state. Values are
// copied shallowly.
func (c *Context) Copy() *Context {
	out := NewContext()
	for _, k := range c.keys {
		out.Set(k, c.values[k])
	}
	out.failed = c.failed
	out.failure = c.failure
	return out
}

// Fail transitions the Context to its terminal failed state carrying
// payload. The first failure wins; later calls are ignored.
func (c *Context) Fail(payload any) {
	if c.failed {
		return
	}
	c.failed = true
	c.failure = payload
}

// Failed reports whether the Context has taken the failure transition.
func (c *Context) Failed() bool { return c.failed }

// Ok reports whether the Context has not failed.
func (c *Context) Ok() bool { return !c.failed }

// Failure returns the payload carried by the failure transition, or nil
// when the Context is ok.
func (c *Context) Failure() any { return c.failure }
