// Package screen owns the game window, the model-view matrix stack and the
// projection used by every renderer.
package screen

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"handmade/internal/config"
	"handmade/internal/logging"
	"handmade/internal/vector"
)

const matrixStackCapacity = 32

var (
	ErrNotInitialized     = errors.New("screen: not initialized")
	ErrAlreadyInitialized = errors.New("screen: already initialized")
)

// WindowOptions are the context and surface settings requested when the
// window is opened.
type WindowOptions struct {
	Title        string
	Width        int
	Height       int
	ContextMajor int
	ContextMinor int
	Compatible   bool
	Fullscreen   bool
	MSAA4x       bool
	VSync        bool
	TargetFPS    int
}

// Window is the platform layer the manager drives.
type Window interface {
	Open(opts WindowOptions) error
	Ready() bool
	ShouldClose() bool
	BeginFrame()
	Clear(c color.RGBA)
	EndFrame()
	Close()
	Handle() uintptr

	SetViewport(x, y, width, height int)
	SetDepthTest(enabled bool)
	SetBlending(enabled bool)
}

type Manager struct {
	window Window
	logger *zap.Logger

	initialized   bool
	width         int
	height        int
	pixelsPerUnit int
	clearColor    color.RGBA

	modelView  []mgl32.Mat4
	projection mgl32.Mat4
}

// New returns a manager with a single identity model-view matrix.
func New(window Window, logger *zap.Logger) *Manager {
	m := &Manager{
		window:     window,
		logger:     logging.OrNop(logger).Named("screen"),
		modelView:  make([]mgl32.Mat4, 0, matrixStackCapacity),
		projection: mgl32.Ident4(),
		clearColor: color.RGBA{A: 255},
	}
	m.modelView = append(m.modelView, mgl32.Ident4())
	return m
}

// ContextVersion splits a GL version written as major.minor (3.3, 4.6).
func ContextVersion(v float64) (major, minor int) {
	whole, frac := math.Modf(v)
	return int(whole), int(math.Round(frac * 10))
}

// Initialize opens the window with 4x multisampling and vsync.
func (m *Manager) Initialize(cfg config.Screen) error {
	if m.initialized {
		return ErrAlreadyInitialized
	}

	major, minor := ContextVersion(cfg.Context)
	opts := WindowOptions{
		Title:        cfg.Title,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ContextMajor: major,
		ContextMinor: minor,
		Compatible:   cfg.Compatible,
		Fullscreen:   cfg.Fullscreen,
		MSAA4x:       true,
		VSync:        true,
		TargetFPS:    cfg.TargetFPS,
	}
	if err := m.window.Open(opts); err != nil {
		m.logger.Error("window could not be created", zap.Error(err))
		return fmt.Errorf("open window: %w", err)
	}
	if !m.window.Ready() {
		m.window.Close()
		return fmt.Errorf("open window: OpenGL context %.1f not available", cfg.Context)
	}

	m.width = cfg.Width
	m.height = cfg.Height
	m.pixelsPerUnit = cfg.PixelsPerUnit
	m.initialized = true

	c := cfg.ClearColor
	m.SetClearColor(color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]})

	m.logger.Info("window opened",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("gl_major", major),
		zap.Int("gl_minor", minor),
		zap.Bool("fullscreen", cfg.Fullscreen))
	return nil
}

func (m *Manager) Initialized() bool { return m.initialized }

// ModelViewMatrix returns the top of the stack for in-place edits.
func (m *Manager) ModelViewMatrix() *mgl32.Mat4 {
	return &m.modelView[len(m.modelView)-1]
}

// PushMatrix duplicates the current model-view matrix.
func (m *Manager) PushMatrix() {
	m.modelView = append(m.modelView, *m.ModelViewMatrix())
}

// PopMatrix discards the current model-view matrix. The bottom matrix stays.
func (m *Manager) PopMatrix() {
	if len(m.modelView) > 1 {
		m.modelView = m.modelView[:len(m.modelView)-1]
	}
}

// StackDepth is the number of matrices on the model-view stack.
func (m *Manager) StackDepth() int { return len(m.modelView) }

func (m *Manager) ProjectionMatrix() *mgl32.Mat4 { return &m.projection }

// Set2DScreen switches to an orthographic projection in pixels with the
// origin at the given corner. Depth testing is off and alpha blending on.
func (m *Manager) Set2DScreen(origin config.Origin2D) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	w, h := float32(m.width), float32(m.height)

	switch origin {
	case config.OriginTopLeft:
		m.projection = mgl32.Ortho(0, w, h, 0, -1, 1)
	case config.OriginBottomLeft:
		m.projection = mgl32.Ortho(0, w, 0, h, -1, 1)
	default:
		return fmt.Errorf("screen: unknown origin %q", origin)
	}

	m.window.SetDepthTest(false)
	m.window.SetBlending(true)
	return nil
}

// Set3DScreen switches to a perspective projection. fov is the vertical
// field of view in degrees.
func (m *Manager) Set3DScreen(fov, near, far float32) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	aspect := float32(m.width) / float32(m.height)
	m.projection = mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)

	m.window.SetDepthTest(true)
	m.window.SetBlending(true)
	return nil
}

func (m *Manager) SetClearColor(c color.RGBA) { m.clearColor = c }

func (m *Manager) ClearColor() color.RGBA { return m.clearColor }

func (m *Manager) SetViewport(x, y, width, height int) {
	m.window.SetViewport(x, y, width, height)
}

func (m *Manager) ScreenSize() vector.Vector2D[int] {
	return vector.New(m.width, m.height)
}

func (m *Manager) PixelsPerUnit() int { return m.pixelsPerUnit }

func (m *Manager) WindowHandle() uintptr {
	if !m.initialized {
		return 0
	}
	return m.window.Handle()
}

func (m *Manager) ShouldClose() bool {
	return !m.initialized || m.window.ShouldClose()
}

// Update begins a frame and clears it.
func (m *Manager) Update() {
	if !m.initialized {
		return
	}
	m.window.BeginFrame()
	m.window.Clear(m.clearColor)
}

// Draw presents the frame started by Update.
func (m *Manager) Draw() {
	if !m.initialized {
		return
	}
	m.window.EndFrame()
}

func (m *Manager) Shutdown() {
	if !m.initialized {
		return
	}
	m.window.Close()
	m.initialized = false
	m.logger.Info("window closed")
}
