// Package game implements the windowed game loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wolfcast/internal/config"
	"github.com/Faultbox/wolfcast/internal/engine/debug"
	"github.com/Faultbox/wolfcast/internal/engine/input"
	"github.com/Faultbox/wolfcast/internal/engine/keyboard"
	"github.com/Faultbox/wolfcast/internal/engine/renderer"
	"github.com/Faultbox/wolfcast/internal/engine/window"
	"github.com/Faultbox/wolfcast/internal/game/session"
	"github.com/Faultbox/wolfcast/internal/logger"
)

const windowTitle = "Wolfcast"

// maxStep caps a single update so a stalled frame does not tunnel the
// player through thin walls.
const maxStep = 0.1

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	session  *session.Session
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture
	fps      session.FPSCounter
	log      *zap.Logger
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		shots:  debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "wolf"),
		log:    logger.Named("game"),
	}

	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("rays", cfg.Render.Rays),
		zap.Int("workers", cfg.Render.Workers),
	)

	var err error
	g.session, err = session.Start(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      windowTitle + " - " + g.session.Map.Name,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := g.window.GetDrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	g.log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	var frameBudget time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxStep)
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		screenshot := g.handleEvents()

		// 2. Update game state
		g.session.Update(dt)

		// 3. Render
		w, h := g.window.GetDrawableSize()
		fb := g.session.Render(g.config.FrameSize(w, h))
		g.renderer.Present(fb)
		if screenshot {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		if g.fps.Tick(time.Now()) {
			g.log.Debug("fps", zap.Float64("fps", g.fps.FPS()), zap.Float64("dt_ms", dt*1000))
			if g.config.Logging.Level == "debug" {
				g.session.Status = g.session.StatusLine(g.fps.FPS())
			}
		}

		if frameBudget > 0 {
			if spent := time.Since(now); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}
	}

	return nil
}

// handleEvents routes the frame's input events and reports whether a
// screenshot was requested. The session owns the keyboard state; every key
// transition reaches it through HandleKey.
func (g *Game) handleEvents() bool {
	screenshot := false
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := g.window.GetDrawableSize()
			g.renderer.Resize(w, h)
		case input.EventFocusLost:
			g.session.Keys.Reset()
		case input.EventKeyDown, input.EventKeyUp:
			action := keyboard.Released
			if event.Type == input.EventKeyDown {
				action = keyboard.Pressed
			}
			switch g.session.HandleKey(keyboard.Event{Code: event.Key, Action: action}) {
			case session.CommandQuit:
				g.running = false
			case session.CommandScreenshot:
				screenshot = true
			}
		}
	}
	return screenshot
}

func (g *Game) screenshot() {
	path, err := g.shots.Capture(g.session.Frame())
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
