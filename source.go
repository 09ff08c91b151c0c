// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import (
	"fmt"
	"log/slog"
)

// WindowData is handed from the event pump to the render goroutine once
// the window exists.
type WindowData struct {
	// Size is the inner size the window was created with.
	Size Size
	// Window is the platform window.
	Window Window
}

// EventSource runs on the render goroutine. It receives platform events
// from the event pump, drives the swapchain lifecycle and turns each
// event into exactly one [AppEvent].
//
// The swapchain state machine has two states, without and with a live
// swapchain. Resumed creates one, Suspended destroys it; every other
// event leaves the state unchanged.
type EventSource struct {
	events     *Receiver[Event]
	windowData *Cell[WindowData]
	swapchain  *Swapchain
}

// NewEventSource returns an event source reading from events, with
// window data published through windowData. [Spawn] wires both; this
// constructor exists for custom controllers and tests.
func NewEventSource(events *Receiver[Event], windowData *Cell[WindowData]) *EventSource {
	return &EventSource{events: events, windowData: windowData}
}

// Receive blocks for the next platform event and classifies it.
// device creates the swapchain on Resumed.
//
// The only error is one matching [ErrDisconnected]: the event pump or the
// window is gone and the render loop should end. A second Resumed while a
// swapchain is live panics.
func (s *EventSource) Receive(device Device) (AppEvent, error) {
	ev, err := s.events.Recv()
	if err != nil {
		return AppEvent{}, err
	}

	switch ev.Kind {
	case EventWindow:
		return s.windowEvent(ev.WindowEvent), nil
	case EventSuspended:
		if s.swapchain != nil {
			Logger().Info("suspended: destroying swapchain", slog.Uint64("serial", uint64(s.swapchain.Serial())))
			s.swapchain.destroy()
			s.swapchain = nil
		}
		return AppEvent{Kind: RawEvent, Event: ev}, nil
	case EventResumed:
		wd, err := s.windowData.Wait()
		if err != nil {
			return AppEvent{}, fmt.Errorf("%w: window data: %w", ErrDisconnected, err)
		}
		if s.swapchain != nil {
			panic("renderloop: unbalanced Resumed event, swapchain already live")
		}
		size := wd.Window.InnerSize()
		s.swapchain = NewSwapchain(device, wd.Window.Handle(), size.Width, size.Height)
		Logger().Info("resumed: created swapchain",
			slog.Uint64("serial", uint64(s.swapchain.Serial())),
			slog.String("size", size.String()))
		return AppEvent{Kind: RawEvent, Event: ev}, nil
	case EventAboutToWait:
		if s.swapchain != nil {
			if size, ok := s.swapchain.applyResize(); ok {
				Logger().Debug("applied deferred resize", slog.String("size", size.String()))
			}
		}
		return AppEvent{Kind: Render, Swapchain: s.swapchain}, nil
	default:
		return AppEvent{Kind: RawEvent, Event: ev}, nil
	}
}

func (s *EventSource) windowEvent(we WindowEvent) AppEvent {
	switch we.Kind {
	case WindowResized:
		if s.swapchain != nil {
			s.swapchain.requestResize(we.Size)
		}
	case WindowCloseRequested:
		return AppEvent{Kind: Terminate}
	case WindowKeyboardInput:
		if we.Key.Key == KeyEscape {
			return AppEvent{Kind: Terminate}
		}
	}
	return AppEvent{Kind: RawWindowEvent, WindowEvent: we}
}

// EarlyWindowSize blocks until the window exists and returns the size it
// was created with. Use it for setup before the first event arrives.
// Returns an error matching [ErrDisconnected] if the window was never
// created.
func (s *EventSource) EarlyWindowSize() (Size, error) {
	wd, err := s.windowData.Wait()
	if err != nil {
		return Size{}, fmt.Errorf("%w: window data: %w", ErrDisconnected, err)
	}
	return wd.Size, nil
}

// Swapchain returns the live swapchain, or nil while the window is not
// visible.
func (s *EventSource) Swapchain() *Swapchain {
	return s.swapchain
}

// close releases the live swapchain and disconnects from the event pump.
func (s *EventSource) close() {
	if s.swapchain != nil {
		s.swapchain.destroy()
		s.swapchain = nil
	}
	s.events.Close()
}
