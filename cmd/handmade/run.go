package main

import (
	"context"
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"handmade/internal/cli"
	"handmade/internal/client"
	"handmade/internal/debugdraw"
	"handmade/internal/debugdraw/rldraw"
	"handmade/internal/physics"
	"handmade/internal/screen"
	"handmade/internal/screen/rlwindow"
	"handmade/internal/shader"
	"handmade/internal/shader/rlshader"
	"handmade/internal/world"
)

// Game is the windowed sandbox state.
type Game struct {
	World   *world.World
	Screen  *screen.Manager
	Shaders *shader.Manager
	Client  *client.Client
	Drawer  *rldraw.Drawer

	Paused     bool
	ShowBounds bool

	stepOnce bool
	budget   time.Duration
	logger   *zap.Logger
}

func runGame(ctx context.Context, env *cli.Env, scenePath string, opts cli.RunOptions) error {
	logger := env.Logger
	cfg := env.Config

	w := world.New(cfg.Collision, logger)
	if err := w.LoadScene(scenePath); err != nil {
		return err
	}

	scr := screen.New(rlwindow.New(logger), logger)
	if err := scr.Initialize(cfg.Screen); err != nil {
		return err
	}
	defer scr.Shutdown()
	if err := scr.Set2DScreen(cfg.Screen.Origin); err != nil {
		return err
	}
	size := scr.ScreenSize()
	scr.SetViewport(0, 0, size.X, size.Y)

	g := &Game{
		World:      w,
		Screen:     scr,
		Drawer:     rldraw.New(debugdraw.NewView(size.X, size.Y, scr.PixelsPerUnit())),
		Paused:     opts.Paused,
		ShowBounds: true,
		budget:     frameBudget(cfg.Screen.TargetFPS),
		logger:     logger,
	}

	if cfg.Shaders.Vertex != "" && cfg.Shaders.Fragment != "" {
		g.Shaders = shader.New(rlshader.Backend{}, logger)
		if err := g.loadShaders(cfg.Shaders.Vertex, cfg.Shaders.Fragment); err != nil {
			// The default raylib pipeline still draws the bounds.
			logger.Warn("custom shaders disabled", zap.Error(err))
		}
		defer g.Shaders.Shutdown()
	}

	if opts.Connect {
		g.Client = client.New(cfg.Client, logger)
		if err := g.connect(ctx, cfg.Client.Host, cfg.Client.Port); err != nil {
			logger.Warn("running offline", zap.Error(err))
		}
		defer g.Client.Close()
	}

	w.Physics.CollisionStarted.AddListener(func(p physics.CollisionPair) { g.report("enter", p) })
	w.Physics.CollisionEnded.AddListener(func(p physics.CollisionPair) { g.report("exit", p) })

	for !scr.ShouldClose() && ctx.Err() == nil {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) loadShaders(vertex, fragment string) error {
	s := g.Shaders
	if err := s.Initialize(); err != nil {
		return err
	}
	stages := []struct {
		kind shader.Kind
		file string
	}{
		{shader.Vertex, vertex},
		{shader.Fragment, fragment},
	}
	for _, st := range stages {
		if err := s.Create(st.kind, "main"); err != nil {
			return err
		}
		if err := s.Compile(st.kind, st.file, "main"); err != nil {
			return err
		}
		if err := s.Attach(st.kind, "main"); err != nil {
			return err
		}
	}
	if err := s.Link(); err != nil {
		return err
	}
	if loc := s.Uniform("projection"); loc >= 0 {
		s.SetUniformMatrix(loc, *g.Screen.ProjectionMatrix())
	}
	if loc := s.Uniform("model"); loc >= 0 {
		s.SetUniformMatrix(loc, *g.Screen.ModelViewMatrix())
	}
	return nil
}

func (g *Game) connect(ctx context.Context, host string, port int) error {
	if err := g.Client.Initialize(); err != nil {
		return err
	}
	return g.Client.Connect(ctx, host, port)
}

// report forwards contact changes to the server as text lines.
func (g *Game) report(kind string, p physics.CollisionPair) {
	if g.Client == nil || !g.Client.Connected() {
		return
	}
	a, b := p.Refs()
	line := fmt.Sprintf("%s %d %d %s %s\n", kind, a.UID, b.UID, p.A.Name, p.B.Name)
	if err := g.Client.Send([]byte(line)); err != nil {
		g.logger.Warn("dropping connection", zap.Error(err))
		_ = g.Client.Close()
	}
}

func (g *Game) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.Paused = !g.Paused
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.ShowBounds = !g.ShowBounds
	}
	if g.Paused && rl.IsKeyPressed(rl.KeyN) {
		g.stepOnce = true
	}

	var dt float32
	switch {
	case !g.Paused:
		dt = rl.GetFrameTime()
	case g.stepOnce:
		dt = 1.0 / 60
		g.stepOnce = false
	default:
		return
	}

	start := time.Now()
	g.World.Step(dt)
	if elapsed := time.Since(start); g.budget > 0 && elapsed > g.budget {
		g.logger.Debug("slow step", zap.Duration("elapsed", elapsed), zap.Duration("budget", g.budget))
	}
}

func (g *Game) Draw() {
	g.Screen.Update()

	if g.ShowBounds {
		g.World.DrawBounds(g.Drawer)
	}
	g.drawHUD()

	g.Screen.Draw()
}

func (g *Game) drawHUD() {
	g.Paused = gui.CheckBox(rl.NewRectangle(10, 10, 20, 20), "Paused", g.Paused)
	g.ShowBounds = gui.CheckBox(rl.NewRectangle(10, 40, 20, 20), "Bounds", g.ShowBounds)
	if g.Paused && gui.Button(rl.NewRectangle(10, 70, 80, 24), "Step") {
		g.stepOnce = true
	}

	stats := g.World.Physics.Stats()
	status := fmt.Sprintf("colliders %d  tests %d  contacts %d", stats.Colliders, stats.Candidates, stats.Contacts)
	rl.DrawText(status, 10, int32(g.Screen.ScreenSize().Y)-30, 18, rl.LightGray)

	y := int32(110)
	for _, c := range g.World.Contacts() {
		rl.DrawText(c[0]+" <-> "+c[1], 10, y, 16, rl.RayWhite)
		y += 20
	}

	if g.Client != nil && g.Client.Connected() {
		rl.DrawText("online "+g.Client.RemoteAddr().String(), 10, y+10, 16, rl.Green)
	}
	rl.DrawFPS(int32(g.Screen.ScreenSize().X)-90, 10)
}

// frameBudget is how long one frame may take at the given rate.
func frameBudget(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
