// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command renderloop-demo opens a GLFW window and runs a render loop
// against a headless device that only tracks drawable sizes. It logs
// pause/resume, swapchain lifecycle and size drift, and exits on close or
// Escape.
//
// Usage:
//
//	renderloop-demo [-config demo.toml]
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"code.hybscloud.com/renderloop"
	"code.hybscloud.com/renderloop/glfwloop"
)

func main() {
	path := flag.String("config", "", "TOML configuration file")
	flag.Parse()

	cfg, err := loadConfig(*path)
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.level()}))
	renderloop.SetLogger(logger)

	loop, err := glfwloop.New()
	if err != nil {
		log.Fatal(err)
	}

	rl := renderloop.Spawn(loop, cfg.renderConfig(), func(src *renderloop.EventSource) uint64 {
		device := &headlessDevice{kind: cfg.handleKind()}

		initial, err := src.EarlyWindowSize()
		if err != nil {
			logger.Warn("window never created", slog.Any("err", err))
			return 0
		}
		sizes := renderloop.NewSizeTracker(initial)

		frames, err := renderloop.Drive(src, device, uint64(0), func(frames uint64, ev renderloop.AppEvent) kontStep {
			switch ev.Kind {
			case renderloop.Terminate:
				return renderloop.Finish[uint64](frames)
			case renderloop.Render:
				if ev.Swapchain == nil {
					return renderloop.Continue[uint64, uint64](frames)
				}
				if size, changed := sizes.Observe(ev.Swapchain); changed {
					logger.Info("resize", slog.String("size", size.String()))
				}
				ev.Swapchain.Surface().(*headlessSurface).present()
				return renderloop.Continue[uint64, uint64](frames + 1)
			}
			return renderloop.Continue[uint64, uint64](frames)
		})
		if err != nil && !renderloop.IsDisconnected(err) {
			logger.Error("render loop", slog.Any("err", err))
		}
		return frames
	})

	frames, err := rl.RunLoop()
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("done", slog.Uint64("frames", frames))
}
