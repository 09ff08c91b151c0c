// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package glfwloop implements [renderloop.EventLoop] on GLFW.
//
// GLFW must be driven from the main OS thread: this package locks the
// main goroutine to it in init, and [renderloop.RenderLoop.RunLoop] must
// be called from main.
package glfwloop

import (
	"errors"
	"fmt"
	"runtime"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/renderloop"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW requires the main thread.
	runtime.LockOSThread()
}

// ErrMultipleWindows is returned by CreateWindow after the first window.
var ErrMultipleWindows = errors.New("glfwloop: multiple windows are not supported")

// Loop is a GLFW event loop owning a single window.
type Loop struct {
	win     *Window
	handler func(renderloop.Event, renderloop.LoopControl)
	flow    renderloop.ControlFlow
	exit    bool
}

// New initializes GLFW. The returned loop must be used from the main
// goroutine only, except for Wake.
func New() (*Loop, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwloop: init: %w", err)
	}
	return &Loop{}, nil
}

// CreateWindow creates the window without a client API: the surface is
// bound by the graphics device, not by GLFW.
func (l *Loop) CreateWindow(title string, size renderloop.Size) (renderloop.Window, error) {
	if l.win != nil {
		return nil, ErrMultipleWindows
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glw, err := glfw.CreateWindow(int(size.Width), int(size.Height), title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfwloop: create window: %w", err)
	}
	w := &Window{id: 1, glw: glw, handle: nativeHandle(glw)}
	w.storeSize(glw.GetFramebufferSize())

	glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.storeSize(width, height)
		l.dispatch(renderloop.Resized(w.id, w.InnerSize()))
	})
	glw.SetCloseCallback(func(glw *glfw.Window) {
		// Closing is the render loop's decision.
		glw.SetShouldClose(false)
		l.dispatch(renderloop.CloseRequested(w.id))
	})
	glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		in := renderloop.KeyInput{Key: mapKey(key), Scancode: scancode, Repeat: action == glfw.Repeat}
		if action == glfw.Release {
			in.State = renderloop.KeyReleased
		}
		l.dispatch(renderloop.KeyboardInput(w.id, in))
	})
	glw.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			l.dispatch(renderloop.Suspended)
		} else {
			l.dispatch(renderloop.Resumed)
		}
	})
	glw.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		l.dispatch(renderloop.OnWindow(w.id, renderloop.WindowEvent{Kind: renderloop.WindowFocused, Focused: focused}))
	})
	glw.SetPosCallback(func(_ *glfw.Window, x, y int) {
		l.dispatch(renderloop.OnWindow(w.id, renderloop.WindowEvent{Kind: renderloop.WindowMoved, X: x, Y: y}))
	})
	glw.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		l.dispatch(renderloop.ScaleFactorChanged(w.id, float64(x)))
	})

	l.win = w
	return w, nil
}

// Run reports Resumed for the initially visible window, then pumps GLFW
// events until Exit. Every iteration is bracketed by NewEvents and
// AboutToWait; LoopExiting is reported last.
// The window is destroyed and GLFW terminated when Run returns.
func (l *Loop) Run(handler func(renderloop.Event, renderloop.LoopControl)) error {
	if l.win == nil {
		return errors.New("glfwloop: run without a window")
	}
	defer glfw.Terminate()
	defer l.win.glw.Destroy()

	l.runEvents(handler, glfw.PollEvents, glfw.WaitEvents)
	return nil
}

// runEvents is the loop body of Run. poll and wait process pending OS
// events, invoking the window callbacks.
func (l *Loop) runEvents(handler func(renderloop.Event, renderloop.LoopControl), poll, wait func()) {
	l.handler = handler
	l.dispatch(renderloop.Resumed)
	for !l.exit {
		l.dispatch(renderloop.NewEvents)
		if l.flow == renderloop.Poll {
			poll()
		} else {
			wait()
		}
		l.dispatch(renderloop.AboutToWait)
	}
	// dispatch drops events once exiting.
	l.handler(renderloop.LoopExiting, l)
}

// SetControlFlow implements renderloop.LoopControl.
func (l *Loop) SetControlFlow(flow renderloop.ControlFlow) {
	l.flow = flow
}

// Exit implements renderloop.LoopControl.
func (l *Loop) Exit() {
	l.exit = true
}

// Wake unblocks a WaitEvents call. Safe to call from any goroutine.
func (l *Loop) Wake() {
	glfw.PostEmptyEvent()
}

// NativeHandleKind is the kind of handle windows report on this build
// target.
func NativeHandleKind() renderloop.HandleKind {
	return nativeKind
}

func (l *Loop) dispatch(ev renderloop.Event) {
	if l.exit || l.handler == nil {
		return
	}
	l.handler(ev, l)
}

// Window is the GLFW window. Its size is cached on every framebuffer
// resize so the render goroutine can read it without calling into GLFW.
type Window struct {
	id     renderloop.WindowID
	glw    *glfw.Window
	handle renderloop.WindowHandle
	size   atomix.Uint64
}

// ID implements renderloop.Window.
func (w *Window) ID() renderloop.WindowID {
	return w.id
}

// InnerSize returns the framebuffer size in pixels.
func (w *Window) InnerSize() renderloop.Size {
	v := w.size.Load()
	return renderloop.Size{Width: uint32(v >> 32), Height: uint32(v)}
}

// Handle returns the native window handle.
func (w *Window) Handle() renderloop.WindowHandle {
	return w.handle
}

func (w *Window) storeSize(width, height int) {
	w.size.Store(uint64(uint32(width))<<32 | uint64(uint32(height)))
}

func mapKey(k glfw.Key) renderloop.Key {
	switch k {
	case glfw.KeyEscape:
		return renderloop.KeyEscape
	case glfw.KeyEnter:
		return renderloop.KeyEnter
	case glfw.KeySpace:
		return renderloop.KeySpace
	case glfw.KeyTab:
		return renderloop.KeyTab
	case glfw.KeyBackspace:
		return renderloop.KeyBackspace
	case glfw.KeyLeft:
		return renderloop.KeyLeft
	case glfw.KeyRight:
		return renderloop.KeyRight
	case glfw.KeyUp:
		return renderloop.KeyUp
	case glfw.KeyDown:
		return renderloop.KeyDown
	}
	return renderloop.KeyUnknown
}
