package interq

import (
	"context"
	"fmt"
)

// SyncCall resolves name, constructs a fresh interactor bound to c, and
// runs it to completion inline. The mutated Context is returned alongside
// whatever error the interactor raised; business failures live on the
// Context itself.
func (r *Registry) SyncCall(ctx context.Context, name string, c *Context) (*Context, error) {
	reg, ok := r.Get(name)
	if !ok {
		return c, fmt.Errorf("%w: %q", ErrUnknownInteractor, name)
	}
	return reg.SyncCall(ctx, c)
}

// SyncCall runs the registered interactor inline against c.
func (reg *Registration) SyncCall(ctx context.Context, c *Context) (*Context, error) {
	i := reg.New()
	if err := i.Call(ctx, c); err != nil {
		return c, err
	}
	return c, nil
}
