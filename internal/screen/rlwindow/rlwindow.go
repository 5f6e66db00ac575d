// Package rlwindow implements screen.Window on top of raylib.
package rlwindow

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"handmade/internal/logging"
	"handmade/internal/screen"
)

// Window drives the single raylib window. raylib keeps its window in global
// state so only one may be open per process.
type Window struct {
	logger *zap.Logger
	open   bool
}

func New(logger *zap.Logger) *Window {
	return &Window{logger: logging.OrNop(logger).Named("rlwindow")}
}

var _ screen.Window = (*Window)(nil)

func (w *Window) Open(opts screen.WindowOptions) error {
	if w.open {
		return errors.New("rlwindow: window already open")
	}

	flags := uint32(rl.FlagWindowHighdpi)
	if opts.MSAA4x {
		flags |= rl.FlagMsaa4xHint
	}
	if opts.VSync {
		flags |= rl.FlagVsyncHint
	}
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	// The GL version is fixed when raylib is built, so the requested one is
	// only reported.
	w.logger.Debug("requested context",
		zap.Int("major", opts.ContextMajor),
		zap.Int("minor", opts.ContextMinor),
		zap.Bool("compatible", opts.Compatible))

	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return errors.New("rlwindow: raylib could not create the window")
	}
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	w.open = true
	return nil
}

func (w *Window) Ready() bool { return w.open && rl.IsWindowReady() }

func (w *Window) ShouldClose() bool { return rl.WindowShouldClose() }

func (w *Window) BeginFrame() { rl.BeginDrawing() }

func (w *Window) Clear(c color.RGBA) { rl.ClearBackground(c) }

func (w *Window) EndFrame() { rl.EndDrawing() }

func (w *Window) Close() {
	if !w.open {
		return
	}
	rl.CloseWindow()
	w.open = false
}

func (w *Window) Handle() uintptr {
	return uintptr(rl.GetWindowHandle())
}

func (w *Window) SetViewport(x, y, width, height int) {
	rl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (w *Window) SetDepthTest(enabled bool) {
	if enabled {
		rl.EnableDepthTest()
	} else {
		rl.DisableDepthTest()
	}
}

func (w *Window) SetBlending(enabled bool) {
	if enabled {
		rl.EnableColorBlend()
	} else {
		rl.DisableColorBlend()
	}
}
