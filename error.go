// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop

import "errors"

var (
	// ErrDisconnected reports that the other end of the render loop is
	// gone: the event pump when receiving, the render goroutine when
	// sending. The standard response is to shut down.
	ErrDisconnected = errors.New("renderloop: disconnected")

	// ErrAlreadySet is returned by [Cell.Set] after the first successful call.
	ErrAlreadySet = errors.New("renderloop: cell already set")

	// ErrAbandoned is returned by [Cell.Wait] when the cell was torn down
	// before a value was set.
	ErrAbandoned = errors.New("renderloop: cell abandoned before set")
)
