// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import "sync"

// Cell is a write-once value shared between goroutines.
// Readers block in [Cell.Wait] until the value is set or the cell is
// abandoned. There is no reset: once set, every reader observes the
// first value for the lifetime of the cell.
type Cell[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	set       bool
	abandoned bool
	value     T
}

// NewCell returns an empty cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{done: make(chan struct{})}
}

// Set stores v and wakes all waiting readers.
// Only the first call succeeds; later calls return [ErrAlreadySet] and
// leave the stored value untouched. Setting an abandoned cell returns
// [ErrAbandoned].
func (c *Cell[T]) Set(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return ErrAlreadySet
	}
	if c.abandoned {
		return ErrAbandoned
	}
	c.value = v
	c.set = true
	close(c.done)
	return nil
}

// Abandon tears down an unset cell: blocked and future readers return
// [ErrAbandoned]. It has no effect once a value was set.
func (c *Cell[T]) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set || c.abandoned {
		return
	}
	c.abandoned = true
	close(c.done)
}

// Wait blocks until the cell is set and returns its value.
// It never times out. Wait is safe for concurrent use.
func (c *Cell[T]) Wait() (T, error) {
	<-c.done
	return c.load()
}

// Get returns the value without blocking.
// ok is false while the cell is unset or after it was abandoned.
func (c *Cell[T]) Get() (v T, ok bool) {
	select {
	case <-c.done:
		v, err := c.load()
		return v, err == nil
	default:
		return v, false
	}
}

// load reads the settled state. Called only after done is closed.
func (c *Cell[T]) load() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.set {
		var zero T
		return zero, ErrAbandoned
	}
	return c.value, nil
}
