// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package glfwloop

import (
	"unsafe"

	"code.hybscloud.com/renderloop"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const nativeKind = renderloop.HandleWin32

// nativeHandle returns the HWND of w.
func nativeHandle(w *glfw.Window) renderloop.WindowHandle {
	return renderloop.WindowHandle{
		Kind:   renderloop.HandleWin32,
		Window: uintptr(unsafe.Pointer(w.GetWin32Window())),
	}
}
