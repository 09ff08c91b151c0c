// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/renderloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameStats is the state threaded through a Drive loop.
type frameStats struct {
	frames  int
	skipped int
	resizes int
}

func countFrames(tracker *renderloop.SizeTracker) func(frameStats, renderloop.AppEvent) kont.Either[frameStats, frameStats] {
	return func(s frameStats, ev renderloop.AppEvent) kont.Either[frameStats, frameStats] {
		switch ev.Kind {
		case renderloop.Terminate:
			return renderloop.Finish[frameStats](s)
		case renderloop.Render:
			if ev.Swapchain == nil {
				s.skipped++
				return renderloop.Continue[frameStats, frameStats](s)
			}
			if _, changed := tracker.Observe(ev.Swapchain); changed {
				s.resizes++
			}
			s.frames++
		}
		return renderloop.Continue[frameStats, frameStats](s)
	}
}

func TestDriveUntilTerminate(t *testing.T) {
	skipRace(t)
	loop := &scriptLoop{script: []renderloop.Event{
		renderloop.AboutToWait,
		renderloop.Resumed,
		renderloop.AboutToWait,
		renderloop.Resized(testWindow, renderloop.Size{Width: 800, Height: 600}),
		renderloop.AboutToWait,
		renderloop.AboutToWait,
		renderloop.KeyboardInput(testWindow, renderloop.KeyInput{Key: renderloop.KeyEscape}),
		renderloop.AboutToWait,
	}}
	dev := newFakeDevice()

	type result struct {
		stats frameStats
		err   error
	}
	out, err := renderloop.Spawn(loop, renderloop.DefaultConfig(), func(src *renderloop.EventSource) result {
		initial, err := src.EarlyWindowSize()
		if err != nil {
			return result{err: err}
		}
		stats, err := renderloop.Drive(src, dev, frameStats{}, countFrames(renderloop.NewSizeTracker(initial)))
		return result{stats: stats, err: err}
	}).RunLoop()
	require.NoError(t, err)
	require.NoError(t, out.err)

	assert.Equal(t, frameStats{frames: 3, skipped: 1, resizes: 1}, out.stats)
}

func TestDriveDisconnected(t *testing.T) {
	skipRace(t)
	send, src, _ := newSource(t, initialSize)
	require.NoError(t, send.TrySend(renderloop.AboutToWait))
	send.Close()

	stats, err := renderloop.Drive(src, newFakeDevice(), frameStats{}, countFrames(renderloop.NewSizeTracker(initialSize)))
	assert.True(t, renderloop.IsDisconnected(err))
	assert.Zero(t, stats)
}

func TestSizeTracker(t *testing.T) {
	dev := newFakeDevice()
	sc := renderloop.NewSwapchain(dev, renderloop.WindowHandle{Kind: renderloop.HandleHeadless}, 100, 50)
	tracker := renderloop.NewSizeTracker(renderloop.Size{Width: 100, Height: 50})

	_, changed := tracker.Observe(sc)
	assert.False(t, changed)

	dev.surfaces[0].SetDrawableSize(renderloop.Size{Width: 200, Height: 50})
	size, changed := tracker.Observe(sc)
	assert.True(t, changed)
	assert.Equal(t, renderloop.Size{Width: 200, Height: 50}, size)
	assert.Equal(t, size, tracker.Last())

	_, changed = tracker.Observe(sc)
	assert.False(t, changed)
}
