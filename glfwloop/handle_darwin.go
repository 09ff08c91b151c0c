// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build darwin

package glfwloop

import (
	"unsafe"

	"code.hybscloud.com/renderloop"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const nativeKind = renderloop.HandleAppKit

// nativeHandle returns the NSWindow of w. AppKit has no display handle.
func nativeHandle(w *glfw.Window) renderloop.WindowHandle {
	return renderloop.WindowHandle{
		Kind:   renderloop.HandleAppKit,
		Window: uintptr(unsafe.Pointer(w.GetCocoaWindow())),
	}
}
