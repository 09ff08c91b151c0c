// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"code.hybscloud.com/renderloop"
	"code.hybscloud.com/renderloop/glfwloop"
	"github.com/pelletier/go-toml/v2"
)

// config is the demo configuration file:
//
//	title = "renderloop demo"
//	width = 1280
//	height = 720
//	log_level = "info"
//	handle = "x11"
//
// An empty handle selects the native handle kind of the build target.
type config struct {
	Title    string `toml:"title"`
	Width    uint32 `toml:"width"`
	Height   uint32 `toml:"height"`
	LogLevel string `toml:"log_level"`
	Handle   string `toml:"handle"`
}

func defaultConfig() config {
	return config{
		Title:    "renderloop demo",
		Width:    1280,
		Height:   720,
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. An empty path keeps the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return cfg, fmt.Errorf("config %s: window size must be non-zero, got %d×%d", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}

func (c config) renderConfig() renderloop.Config {
	return renderloop.DefaultConfig(
		renderloop.WithTitle(c.Title),
		renderloop.WithSize(c.Width, c.Height),
	)
}

func (c config) level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func (c config) handleKind() renderloop.HandleKind {
	switch strings.ToLower(c.Handle) {
	case "":
		return glfwloop.NativeHandleKind()
	case "x11":
		return renderloop.HandleX11
	case "wayland":
		return renderloop.HandleWayland
	case "appkit":
		return renderloop.HandleAppKit
	case "win32":
		return renderloop.HandleWin32
	case "headless":
		return renderloop.HandleHeadless
	}
	return renderloop.HandleUnknown
}
