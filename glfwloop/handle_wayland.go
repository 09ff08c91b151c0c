// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build (linux || freebsd || netbsd || openbsd) && wayland

package glfwloop

import (
	"unsafe"

	"code.hybscloud.com/renderloop"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const nativeKind = renderloop.HandleWayland

// nativeHandle returns the wl_surface and wl_display of w.
func nativeHandle(w *glfw.Window) renderloop.WindowHandle {
	return renderloop.WindowHandle{
		Kind:    renderloop.HandleWayland,
		Window:  uintptr(unsafe.Pointer(w.GetWaylandWindow())),
		Display: uintptr(unsafe.Pointer(glfw.GetWaylandDisplay())),
	}
}
