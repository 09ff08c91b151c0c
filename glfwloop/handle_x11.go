// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build (linux || freebsd || netbsd || openbsd) && !wayland

package glfwloop

import (
	"unsafe"

	"code.hybscloud.com/renderloop"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const nativeKind = renderloop.HandleX11

func nativeHandle(w *glfw.Window) renderloop.WindowHandle {
	return renderloop.WindowHandle{
		Kind:    renderloop.HandleX11,
		Window:  uintptr(w.GetX11Window()),
		Display: uintptr(unsafe.Pointer(glfw.GetX11Display())),
	}
}
