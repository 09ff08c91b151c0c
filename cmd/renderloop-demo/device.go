// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/renderloop"
)

type kontStep = kont.Either[uint64, uint64]

// headlessDevice binds surfaces that only remember their size.
type headlessDevice struct {
	kind renderloop.HandleKind
}

func (d *headlessDevice) HandleKind() renderloop.HandleKind { return d.kind }

func (d *headlessDevice) NewSurface(_ renderloop.WindowHandle, size renderloop.Size) renderloop.Surface {
	return &headlessSurface{size: size}
}

type headlessSurface struct {
	size     renderloop.Size
	presents uint64
}

func (s *headlessSurface) DrawableSize() renderloop.Size        { return s.size }
func (s *headlessSurface) SetDrawableSize(size renderloop.Size) { s.size = size }
func (s *headlessSurface) Release()                             {}

func (s *headlessSurface) present() {
	s.presents++
}
