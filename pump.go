// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import (
	"fmt"
	"log/slog"
)

// ControlFlow is how the platform loop waits between iterations.
type ControlFlow uint8

const (
	// Poll runs the next iteration immediately.
	Poll ControlFlow = iota
	// Wait blocks until the next OS event.
	Wait
)

func (f ControlFlow) String() string {
	if f == Poll {
		return "Poll"
	}
	return "Wait"
}

// LoopControl is handed to the event handler on every iteration.
type LoopControl interface {
	// SetControlFlow sets how the loop waits after this iteration.
	SetControlFlow(ControlFlow)
	// Exit asks the loop to return from Run.
	Exit()
}

// Window is the platform window owned by the event loop.
// InnerSize and Handle are called from the render goroutine.
type Window interface {
	ID() WindowID
	InnerSize() Size
	Handle() WindowHandle
}

// EventLoop is the platform event loop. Both methods are called on the
// goroutine that runs [RenderLoop.RunLoop].
type EventLoop interface {
	// CreateWindow creates the single application window.
	CreateWindow(title string, size Size) (Window, error)
	// Run pumps OS events into handler until Exit is requested or the
	// platform shuts down.
	Run(handler func(Event, LoopControl)) error
}

// Waker is implemented by event loops that can be woken from another
// goroutine while blocked in [Wait]. The render loop wakes the event loop
// when the render goroutine exits so the pump notices the disconnection
// without waiting for the next OS event.
type Waker interface {
	Wake()
}

// pump is the event-loop side of the render loop. Its state is touched
// only by the platform loop goroutine.
type pump struct {
	window  WindowID
	events  *Sender[Event]
	visible bool
	exiting bool
}

func newPump(window WindowID, events *Sender[Event]) *pump {
	return &pump{window: window, events: events, visible: true}
}

// handle processes one platform event: it tracks visibility, picks the
// control flow and forwards the event to the render goroutine.
func (p *pump) handle(ev Event, ctl LoopControl) {
	switch ev.Kind {
	case EventSuspended:
		p.visible = false
		Logger().Info("pausing rendering")
	case EventResumed:
		p.visible = true
		Logger().Info("resuming rendering")
	case EventWindow:
		if ev.Window != p.window {
			panic(fmt.Sprintf("renderloop: multi-window not supported: event for window %d, own window %d", ev.Window, p.window))
		}
	}

	if p.visible {
		ctl.SetControlFlow(Poll)
	} else {
		ctl.SetControlFlow(Wait)
	}

	if ev.Kind == EventWindow && ev.WindowEvent.Kind == WindowScaleFactorChanged {
		return
	}
	if p.exiting {
		return
	}
	if err := p.events.Send(ev); err != nil {
		p.exiting = true
		Logger().Warn("render loop gone, exiting event loop", slog.String("event", ev.String()))
		ctl.Exit()
	}
}
