// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import "fmt"

// WindowID identifies a platform window.
type WindowID uint64

// Size is a size in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

func (s Size) String() string {
	return fmt.Sprintf("%d×%d", s.Width, s.Height)
}

// Key is a platform-independent key code.
type Key int

// Keys recognized by the core. Platforms map everything else to KeyUnknown
// and keep the native code in KeyInput.Scancode.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// KeyState is the transition reported by a keyboard event.
type KeyState uint8

const (
	KeyPressed KeyState = iota
	KeyReleased
)

// KeyInput is the payload of a keyboard window event.
type KeyInput struct {
	Key      Key
	State    KeyState
	Scancode int
	Repeat   bool
}

// WindowEventKind tags a [WindowEvent].
type WindowEventKind uint8

const (
	WindowOther WindowEventKind = iota
	WindowResized
	WindowCloseRequested
	WindowKeyboardInput
	WindowScaleFactorChanged
	WindowMoved
	WindowFocused
)

var windowEventKindNames = [...]string{
	WindowOther:              "Other",
	WindowResized:            "Resized",
	WindowCloseRequested:     "CloseRequested",
	WindowKeyboardInput:      "KeyboardInput",
	WindowScaleFactorChanged: "ScaleFactorChanged",
	WindowMoved:              "Moved",
	WindowFocused:            "Focused",
}

func (k WindowEventKind) String() string {
	if int(k) < len(windowEventKindNames) {
		return windowEventKindNames[k]
	}
	return fmt.Sprintf("WindowEventKind(%d)", uint8(k))
}

// WindowEvent is an event addressed to a single window.
// Only the fields belonging to Kind are meaningful; Payload carries the
// native event for kinds the core does not interpret.
type WindowEvent struct {
	Kind        WindowEventKind
	Size        Size
	Key         KeyInput
	ScaleFactor float64
	X, Y        int
	Focused     bool
	Payload     any
}

// EventKind tags an [Event].
type EventKind uint8

const (
	EventOther EventKind = iota
	EventWindow
	EventSuspended
	EventResumed
	EventAboutToWait
	EventNewEvents
	EventLoopExiting
)

var eventKindNames = [...]string{
	EventOther:       "Other",
	EventWindow:      "Window",
	EventSuspended:   "Suspended",
	EventResumed:     "Resumed",
	EventAboutToWait: "AboutToWait",
	EventNewEvents:   "NewEvents",
	EventLoopExiting: "LoopExiting",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a raw event reported by the platform event loop.
// Window and WindowEvent are set for EventWindow only.
type Event struct {
	Kind        EventKind
	Window      WindowID
	WindowEvent WindowEvent
	Payload     any
}

func (e Event) String() string {
	if e.Kind == EventWindow {
		return fmt.Sprintf("Window(%d, %s)", e.Window, e.WindowEvent.Kind)
	}
	return e.Kind.String()
}

// Lifecycle events carry no payload.
var (
	Suspended   = Event{Kind: EventSuspended}
	Resumed     = Event{Kind: EventResumed}
	AboutToWait = Event{Kind: EventAboutToWait}
	NewEvents   = Event{Kind: EventNewEvents}
	LoopExiting = Event{Kind: EventLoopExiting}
)

// OnWindow wraps we as an event addressed to window id.
func OnWindow(id WindowID, we WindowEvent) Event {
	return Event{Kind: EventWindow, Window: id, WindowEvent: we}
}

// Resized reports a new inner size for window id.
func Resized(id WindowID, size Size) Event {
	return OnWindow(id, WindowEvent{Kind: WindowResized, Size: size})
}

// CloseRequested reports that the user asked to close window id.
func CloseRequested(id WindowID) Event {
	return OnWindow(id, WindowEvent{Kind: WindowCloseRequested})
}

// KeyboardInput reports a key transition on window id.
func KeyboardInput(id WindowID, in KeyInput) Event {
	return OnWindow(id, WindowEvent{Kind: WindowKeyboardInput, Key: in})
}

// ScaleFactorChanged reports a new content scale for window id.
func ScaleFactorChanged(id WindowID, scale float64) Event {
	return OnWindow(id, WindowEvent{Kind: WindowScaleFactorChanged, ScaleFactor: scale})
}

// Other wraps a native loop-level event the core passes through as is.
func Other(payload any) Event {
	return Event{Kind: EventOther, Payload: payload}
}
