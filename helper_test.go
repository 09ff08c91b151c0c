// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/renderloop"
)

const testWindow renderloop.WindowID = 7

// fakeWindow is a headless platform window.
type fakeWindow struct {
	id   renderloop.WindowID
	mu   sync.Mutex
	size renderloop.Size
}

func newFakeWindow(size renderloop.Size) *fakeWindow {
	return &fakeWindow{id: testWindow, size: size}
}

func (w *fakeWindow) ID() renderloop.WindowID { return w.id }

func (w *fakeWindow) InnerSize() renderloop.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

func (w *fakeWindow) Handle() renderloop.WindowHandle {
	return renderloop.WindowHandle{Kind: renderloop.HandleHeadless, Window: uintptr(w.id)}
}

func (w *fakeWindow) resize(size renderloop.Size) {
	w.mu.Lock()
	w.size = size
	w.mu.Unlock()
}

// fakeDevice creates fakeSurfaces for headless handles.
type fakeDevice struct {
	kind     renderloop.HandleKind
	surfaces []*fakeSurface
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{kind: renderloop.HandleHeadless}
}

func (d *fakeDevice) HandleKind() renderloop.HandleKind { return d.kind }

func (d *fakeDevice) NewSurface(h renderloop.WindowHandle, size renderloop.Size) renderloop.Surface {
	s := &fakeSurface{handle: h, size: size}
	d.surfaces = append(d.surfaces, s)
	return s
}

type fakeSurface struct {
	handle   renderloop.WindowHandle
	size     renderloop.Size
	resizes  int
	released bool
}

func (s *fakeSurface) DrawableSize() renderloop.Size { return s.size }

func (s *fakeSurface) SetDrawableSize(size renderloop.Size) {
	s.size = size
	s.resizes++
}

func (s *fakeSurface) Release() { s.released = true }

// fakeControl records what the pump asked of the platform loop.
type fakeControl struct {
	flows []renderloop.ControlFlow
	exits int
}

func (c *fakeControl) SetControlFlow(f renderloop.ControlFlow) { c.flows = append(c.flows, f) }
func (c *fakeControl) Exit()                                   { c.exits++ }

func (c *fakeControl) lastFlow() renderloop.ControlFlow {
	return c.flows[len(c.flows)-1]
}

// scriptLoop is an event loop that replays a fixed list of events, then
// returns from Run as if the platform shut down.
type scriptLoop struct {
	script    []renderloop.Event
	createErr error
	runErr    error

	window  *fakeWindow
	flows   []renderloop.ControlFlow
	handled int
	exited  bool
	wakes   atomix.Uint32
}

func (l *scriptLoop) CreateWindow(_ string, size renderloop.Size) (renderloop.Window, error) {
	if l.createErr != nil {
		return nil, l.createErr
	}
	l.window = newFakeWindow(size)
	return l.window, nil
}

func (l *scriptLoop) Run(handler func(renderloop.Event, renderloop.LoopControl)) error {
	for _, ev := range l.script {
		if l.exited {
			break
		}
		handler(ev, l)
		l.handled++
	}
	return l.runErr
}

func (l *scriptLoop) SetControlFlow(f renderloop.ControlFlow) { l.flows = append(l.flows, f) }
func (l *scriptLoop) Exit()                                   { l.exited = true }
func (l *scriptLoop) Wake()                                   { l.wakes.Add(1) }

// newSource returns an event source whose window data is already
// published, plus the sending end feeding it.
func newSource(t *testing.T, size renderloop.Size) (*renderloop.Sender[renderloop.Event], *renderloop.EventSource, *fakeWindow) {
	t.Helper()
	send, recv := renderloop.NewChannel[renderloop.Event]()
	cell := renderloop.NewCell[renderloop.WindowData]()
	w := newFakeWindow(size)
	if err := cell.Set(renderloop.WindowData{Size: size, Window: w}); err != nil {
		t.Fatalf("set window data: %v", err)
	}
	return send, renderloop.NewEventSource(recv, cell), w
}

// feed sends ev into the empty slot and receives its classification on
// the same goroutine.
func feed(t *testing.T, send *renderloop.Sender[renderloop.Event], src *renderloop.EventSource, dev renderloop.Device, ev renderloop.Event) renderloop.AppEvent {
	t.Helper()
	if err := send.TrySend(ev); err != nil {
		t.Fatalf("send %s: %v", ev, err)
	}
	out, err := src.Receive(dev)
	if err != nil {
		t.Fatalf("receive %s: %v", ev, err)
	}
	return out
}
