// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import (
	"code.hybscloud.com/kont"
)

// Drive runs a render loop body over src until step finishes.
// step returns Left(nextState) to continue or Right(result) to finish.
// Receive errors end the loop and are returned with the zero result;
// callers usually treat them as a normal shutdown, see [IsDisconnected].
func Drive[S, R any](src *EventSource, device Device, initial S, step func(S, AppEvent) kont.Either[S, R]) (R, error) {
	state := initial
	for {
		ev, err := src.Receive(device)
		if err != nil {
			var zero R
			return zero, err
		}
		e := step(state, ev)
		if next, ok := e.GetLeft(); ok {
			state = next
			continue
		}
		result, _ := e.GetRight()
		return result, nil
	}
}

// Continue is the step result that keeps the loop running with s.
func Continue[S, R any](s S) kont.Either[S, R] {
	return kont.Left[S, R](s)
}

// Finish is the step result that ends the loop with r.
func Finish[S, R any](r R) kont.Either[S, R] {
	return kont.Right[S](r)
}

// SizeTracker detects drawable size drift between render ticks.
// Resizes are applied lazily on the render tick, so the consumer checks
// the swapchain size every frame instead of reacting to resize events.
type SizeTracker struct {
	last Size
}

// NewSizeTracker starts tracking from initial, usually
// [EventSource.EarlyWindowSize].
func NewSizeTracker(initial Size) *SizeTracker {
	return &SizeTracker{last: initial}
}

// Observe records the current size of sc and reports whether it differs
// from the previous observation.
func (t *SizeTracker) Observe(sc *Swapchain) (Size, bool) {
	size := sc.CurrentSize()
	if size == t.last {
		return size, false
	}
	t.last = size
	return size, true
}

// Last returns the last observed size.
func (t *SizeTracker) Last() Size {
	return t.last
}
