// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Config describes the window the render loop creates.
type Config struct {
	Title string
	Size  Size
}

// Option adjusts a [Config].
type Option func(*Config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithSize sets the initial inner size of the window.
func WithSize(width, height uint32) Option {
	return func(c *Config) { c.Size = Size{Width: width, Height: height} }
}

// DefaultConfig returns a 1280×720 untitled window configuration with
// opts applied.
func DefaultConfig(opts ...Option) Config {
	c := Config{Size: Size{Width: 1280, Height: 720}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// outcome is how the render goroutine ended.
type outcome[R any] struct {
	value    R
	panicked bool
	payload  any
	stack    []byte
}

// RenderLoop couples a platform event loop on the calling goroutine with
// a render goroutine. The two share only the event channel and the
// window data cell.
type RenderLoop[R any] struct {
	loop       EventLoop
	cfg        Config
	events     *Sender[Event]
	windowData *Cell[WindowData]
	done       chan outcome[R]

	joinOnce sync.Once
	result   outcome[R]
}

// Spawn starts the render goroutine running fn and returns the controller.
// fn receives the [EventSource] and owns it until it returns; its result is
// returned by [RenderLoop.RunLoop] and [RenderLoop.WaitForExit].
// The platform loop does not start until RunLoop is called.
func Spawn[R any](loop EventLoop, cfg Config, fn func(*EventSource) R) *RenderLoop[R] {
	send, recv := NewChannel[Event]()
	rl := &RenderLoop[R]{
		loop:       loop,
		cfg:        cfg,
		events:     send,
		windowData: NewCell[WindowData](),
		done:       make(chan outcome[R], 1),
	}
	src := NewEventSource(recv, rl.windowData)
	go rl.render(src, fn)
	return rl
}

func (rl *RenderLoop[R]) render(src *EventSource, fn func(*EventSource) R) {
	var o outcome[R]
	defer func() {
		if p := recover(); p != nil {
			o = outcome[R]{panicked: true, payload: p, stack: debug.Stack()}
		}
		src.close()
		if w, ok := rl.loop.(Waker); ok {
			w.Wake()
		}
		rl.done <- o
	}()
	o.value = fn(src)
}

// RunLoop creates the window, publishes its data to the render goroutine
// and drives the platform loop on the calling goroutine until it exits.
// It then disconnects the event channel, joins the render goroutine and
// returns its result. Platforms that require it must call RunLoop from
// the main goroutine.
//
// A failure to create the window or to run the loop is returned together
// with whatever the render goroutine returned after being disconnected.
// A render goroutine panic is re-raised, see [RenderLoop.WaitForExit].
func (rl *RenderLoop[R]) RunLoop() (R, error) {
	window, err := rl.loop.CreateWindow(rl.cfg.Title, rl.cfg.Size)
	if err != nil {
		rl.windowData.Abandon()
		rl.events.Close()
		return rl.WaitForExit(), fmt.Errorf("renderloop: create window: %w", err)
	}
	if err := rl.windowData.Set(WindowData{Size: rl.cfg.Size, Window: window}); err != nil {
		panic("renderloop: window data already set")
	}

	runErr := rl.pumpEvents(window)
	r := rl.WaitForExit()
	if runErr != nil {
		return r, fmt.Errorf("renderloop: event loop: %w", runErr)
	}
	return r, nil
}

// pumpEvents runs the platform loop. The event channel is disconnected
// however the loop ends, so the render goroutine always observes it.
func (rl *RenderLoop[R]) pumpEvents(window Window) error {
	defer rl.events.Close()
	return rl.loop.Run(newPump(window.ID(), rl.events).handle)
}

// WaitForExit joins the render goroutine and returns its result.
// If the render goroutine panicked, the panic is logged (with its message
// when it is textual) and re-raised on the calling goroutine.
// WaitForExit may be called more than once.
func (rl *RenderLoop[R]) WaitForExit() R {
	rl.joinOnce.Do(func() {
		rl.result = <-rl.done
	})
	if rl.result.panicked {
		Logger().Error("render loop goroutine panicked",
			slog.String("panic", panicMessage(rl.result.payload)),
			slog.String("stack", string(rl.result.stack)))
		panic(rl.result.payload)
	}
	return rl.result.value
}

// panicMessage renders a panic payload for diagnostics.
func panicMessage(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("unknown panic payload type %T", p)
}

// IsDisconnected reports whether err means the other side of the render
// loop is gone.
func IsDisconnected(err error) bool {
	return errors.Is(err, ErrDisconnected)
}
