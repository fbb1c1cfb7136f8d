package observable

import (
	"context"
	"sync"
)

// Value is a single-slot observable variable.
//
// The slot always holds a current value. Set replaces it atomically and wakes
// every subscriber; Subscribe delivers the value current at subscription time
// and then every later write. A subscriber that does not keep up is conflated
// to the latest value, never blocked on by writers.
type Value[T any] struct {
	// mu protects the fields below.
	mu sync.Mutex
	// current is the value held by the slot.
	current T
	// version counts writes, so subscribers can tell a wake-up apart
	// from a value they have already delivered.
	version uint64
	// changed is closed on every Set and replaced with a fresh channel.
	// Subscribers wait on the instance they captured together with the
	// version it belongs to.
	changed chan struct{}
}

// NewValue returns an observable slot holding the provided initial value.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		changed: make(chan struct{}),
	}
}

// Get returns the value currently held by the slot.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.current
}

// Set replaces the slot's value and wakes all subscribers.
// Concurrent writers are safe; the last writer wins.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = value
	v.version++

	close(v.changed)
	v.changed = make(chan struct{})
}

// Subscribe returns a channel that first delivers the slot's current value
// and then every subsequent write, in write order. Rapid writes against a
// slow reader are conflated: only the latest value is retained for delivery.
//
// The channel is closed and the forwarding goroutine exits when ctx is
// canceled. Values are never dropped silently while the reader keeps up.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		var (
			delivered uint64
			first     = true
		)

		for {
			v.mu.Lock()
			current, version, changed := v.current, v.version, v.changed
			v.mu.Unlock()

			if first || version != delivered {
				select {
				case out <- current:
					delivered = version
					first = false
				case <-ctx.Done():
					return
				}

				// Re-read: the slot may have moved on while the
				// reader was taking delivery.
				continue
			}

			select {
			case <-changed:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
