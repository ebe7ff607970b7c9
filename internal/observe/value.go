// Package observe provides observable cells: values that notify watchers
// synchronously, in order, every time they change.
package observe

// WatchFunc receives a change notification. prev is only meaningful when
// hasPrev is true; the first call made by Watch carries no previous value.
type WatchFunc[T comparable] func(cur, prev T, hasPrev bool)

type change[T comparable] struct {
	cur, prev T
}

// Value is a single observable cell.
//
// Set during a notification does not recurse: the change is queued and
// delivered after the in-flight notification returns, before the outermost
// Set returns. Every watcher therefore sees each distinct value exactly once,
// paired with the value that immediately preceded it.
type Value[T comparable] struct {
	v           T
	watchers    []WatchFunc[T]
	pending     []change[T]
	dispatching bool
}

// NewValue creates a cell holding v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (c *Value[T]) Get() T {
	return c.v
}

// Set stores v and notifies watchers. Setting the current value is a no-op.
func (c *Value[T]) Set(v T) {
	if v == c.v {
		return
	}
	prev := c.v
	c.v = v
	c.pending = append(c.pending, change[T]{cur: v, prev: prev})
	if c.dispatching {
		return
	}

	c.dispatching = true
	defer func() { c.dispatching = false }()
	for len(c.pending) > 0 {
		ch := c.pending[0]
		c.pending = c.pending[1:]
		for _, fn := range c.watchers {
			fn(ch.cur, ch.prev, true)
		}
	}
	c.pending = c.pending[:0]
}

// Watch registers fn and immediately calls it once with the current value
// and no previous value.
func (c *Value[T]) Watch(fn WatchFunc[T]) {
	c.watchers = append(c.watchers, fn)
	var zero T
	fn(c.v, zero, false)
}
