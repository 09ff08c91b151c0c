// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import "fmt"

// HandleKind names the windowing system a [WindowHandle] belongs to.
type HandleKind uint8

const (
	HandleUnknown HandleKind = iota
	HandleX11
	HandleWayland
	HandleAppKit
	HandleWin32
	HandleHeadless
)

var handleKindNames = [...]string{
	HandleUnknown:  "Unknown",
	HandleX11:      "X11",
	HandleWayland:  "Wayland",
	HandleAppKit:   "AppKit",
	HandleWin32:    "Win32",
	HandleHeadless: "Headless",
}

func (k HandleKind) String() string {
	if int(k) < len(handleKindNames) {
		return handleKindNames[k]
	}
	return fmt.Sprintf("HandleKind(%d)", uint8(k))
}

// WindowHandle is the native identity of a window: the view or window
// pointer and, where the windowing system has one, the display connection.
type WindowHandle struct {
	Kind    HandleKind
	Window  uintptr
	Display uintptr
}

// Surface is a renderable surface bound to a native window view.
// It is implemented by the graphics device.
type Surface interface {
	// DrawableSize reports the present size of the drawable.
	DrawableSize() Size
	// SetDrawableSize resizes the drawable in place.
	SetDrawableSize(Size)
	// Release unbinds the surface from the window.
	Release()
}

// Device creates surfaces for one windowing system.
type Device interface {
	// HandleKind is the only window handle kind NewSurface accepts.
	HandleKind() HandleKind
	// NewSurface binds a surface to the window behind h.
	NewSurface(h WindowHandle, size Size) Surface
}

// Swapchain is the renderable surface bound to the window.
// It is owned by the render goroutine: created on Resumed, destroyed on
// Suspended, and handed to the consumer for one render tick at a time.
type Swapchain struct {
	serial    Serial
	surface   Surface
	pending   Size
	resize    bool
	destroyed bool
}

// NewSwapchain binds a new surface of width×height pixels to the window
// behind handle. It panics if handle is not of the kind device accepts:
// the windowing backend is fixed per build target.
func NewSwapchain(device Device, handle WindowHandle, width, height uint32) *Swapchain {
	if want := device.HandleKind(); handle.Kind != want {
		panic(fmt.Sprintf("renderloop: expected %s window handle in swapchain creation, got %s", want, handle.Kind))
	}
	size := Size{Width: width, Height: height}
	return &Swapchain{
		serial:  nextSerial(),
		surface: device.NewSurface(handle, size),
	}
}

// Serial returns the identity of this swapchain.
func (s *Swapchain) Serial() Serial {
	return s.serial
}

// Surface returns the bound surface.
func (s *Swapchain) Surface() Surface {
	s.mustLive()
	return s.surface
}

// CurrentSize reports the drawable's present size. Resizes are applied on
// the render tick after they are reported, so callers compare this against
// their last-known size every tick.
func (s *Swapchain) CurrentSize() Size {
	s.mustLive()
	return s.surface.DrawableSize()
}

// requestResize records a size to apply on the next render tick.
// Bursts of resize notifications collapse into the last one.
func (s *Swapchain) requestResize(size Size) {
	s.pending = size
	s.resize = true
}

// applyResize resizes the drawable in place if a resize is pending.
func (s *Swapchain) applyResize() (Size, bool) {
	if !s.resize {
		return Size{}, false
	}
	s.resize = false
	// A zero-area drawable is invalid; keep the last good size.
	if s.pending.Width == 0 || s.pending.Height == 0 {
		return s.pending, false
	}
	if s.surface.DrawableSize() == s.pending {
		return s.pending, false
	}
	s.surface.SetDrawableSize(s.pending)
	return s.pending, true
}

// destroy releases the surface binding.
func (s *Swapchain) destroy() {
	s.mustLive()
	s.destroyed = true
	s.surface.Release()
	s.surface = nil
}

func (s *Swapchain) mustLive() {
	if s.destroyed {
		panic("renderloop: use of destroyed swapchain")
	}
}
