// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// ringCapacity is the lfq ring size backing a channel.
// The in-flight gate admits a single value, so the ring never holds more
// than one; 2 keeps the ring a power of two above the minimum.
const ringCapacity = 2

// link is the state shared by both ends of a channel, allocated once.
// The ring is a single-producer single-consumer bounded queue; inFlight
// is 1 from the moment the producer claims the slot until the consumer
// has dequeued the value.
type link[T any] struct {
	ring         lfq.SPSC[T]
	inFlight     atomix.Uint32
	senderGone   atomix.Uint32
	receiverGone atomix.Uint32
}

// Sender is the producing end of a single-slot channel.
// It must be used from one goroutine at a time.
type Sender[T any] struct {
	l    *link[T]
	slot T
}

// Receiver is the consuming end of a single-slot channel.
// It must be used from one goroutine at a time.
type Receiver[T any] struct {
	l *link[T]
}

// NewChannel creates a connected single-slot rendezvous channel.
// At most one value is in flight: a send does not complete until the
// previous value has been received.
func NewChannel[T any]() (*Sender[T], *Receiver[T]) {
	l := &link[T]{}
	l.ring.Init(ringCapacity)
	return &Sender[T]{l: l}, &Receiver[T]{l: l}
}

// TrySend offers v without blocking.
// Returns iox.ErrWouldBlock while the previous value is still in flight,
// and [ErrDisconnected] once the receiver has closed.
func (s *Sender[T]) TrySend(v T) error {
	if s.l.receiverGone.Load() != 0 || s.l.senderGone.Load() != 0 {
		return ErrDisconnected
	}
	if s.l.inFlight.Load() != 0 {
		return iox.ErrWouldBlock
	}
	s.l.inFlight.Add(1)
	s.slot = v
	err := s.l.ring.Enqueue(&s.slot)
	var zero T
	s.slot = zero
	if err != nil {
		s.l.inFlight.Add(^uint32(0))
		return err
	}
	return nil
}

// Send blocks until v occupies the slot or the receiver is gone.
// Waits past iox.ErrWouldBlock with adaptive backoff (iox.Backoff).
// Returns [ErrDisconnected] when the receiver has closed.
func (s *Sender[T]) Send(v T) error {
	var bo iox.Backoff
	for {
		err := s.TrySend(v)
		if !iox.IsWouldBlock(err) {
			return err
		}
		bo.Wait()
	}
}

// Close disconnects the sender. A value already in flight stays
// receivable; after it is drained the receiver reports [ErrDisconnected].
func (s *Sender[T]) Close() {
	s.l.senderGone.Add(1)
}

// TryRecv takes the pending value without blocking.
// Returns iox.ErrWouldBlock when the slot is empty and the sender is
// still connected, and [ErrDisconnected] once the sender has closed and
// nothing is left to drain.
func (r *Receiver[T]) TryRecv() (T, error) {
	if r.l.receiverGone.Load() != 0 {
		var zero T
		return zero, ErrDisconnected
	}
	if v, err := r.dequeue(); err == nil {
		return v, nil
	}
	if r.l.senderGone.Load() == 0 {
		var zero T
		return zero, iox.ErrWouldBlock
	}
	// The sender may have published its last value right before closing.
	if v, err := r.dequeue(); err == nil {
		return v, nil
	}
	var zero T
	return zero, ErrDisconnected
}

// Recv blocks until a value is available or the sender is gone.
// Waits past iox.ErrWouldBlock with adaptive backoff (iox.Backoff).
func (r *Receiver[T]) Recv() (T, error) {
	var bo iox.Backoff
	for {
		v, err := r.TryRecv()
		if !iox.IsWouldBlock(err) {
			return v, err
		}
		bo.Wait()
	}
}

// Close disconnects the receiver. The sender's next operation reports
// [ErrDisconnected] instead of waiting for the slot to drain.
func (r *Receiver[T]) Close() {
	r.l.receiverGone.Add(1)
}

func (r *Receiver[T]) dequeue() (T, error) {
	v, err := r.l.ring.Dequeue()
	if err != nil {
		return v, err
	}
	r.l.inFlight.Add(^uint32(0))
	return v, nil
}
