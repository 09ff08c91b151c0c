// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import "fmt"

// AppEventKind tags an [AppEvent].
type AppEventKind uint8

const (
	// Terminate asks the render loop to stop.
	Terminate AppEventKind = iota + 1
	// Render is the render tick. A nil Swapchain means the window is not
	// visible yet: skip the frame.
	Render
	// RawEvent passes a loop-level platform event through.
	RawEvent
	// RawWindowEvent passes a window event through.
	RawWindowEvent
)

func (k AppEventKind) String() string {
	switch k {
	case Terminate:
		return "Terminate"
	case Render:
		return "Render"
	case RawEvent:
		return "RawEvent"
	case RawWindowEvent:
		return "RawWindowEvent"
	}
	return fmt.Sprintf("AppEventKind(%d)", uint8(k))
}

// AppEvent is what [EventSource.Receive] yields: exactly one per
// received platform event.
type AppEvent struct {
	Kind AppEventKind
	// Swapchain is the live swapchain for Render, valid for this tick only.
	Swapchain *Swapchain
	// Event is set for RawEvent.
	Event Event
	// WindowEvent is set for RawWindowEvent.
	WindowEvent WindowEvent
}

func (e AppEvent) String() string {
	switch e.Kind {
	case Render:
		if e.Swapchain == nil {
			return "Render(none)"
		}
		return fmt.Sprintf("Render(#%d)", e.Swapchain.Serial())
	case RawEvent:
		return fmt.Sprintf("RawEvent(%s)", e.Event)
	case RawWindowEvent:
		return fmt.Sprintf("RawWindowEvent(%s)", e.WindowEvent.Kind)
	}
	return e.Kind.String()
}
