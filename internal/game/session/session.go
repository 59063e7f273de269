// Package session ties a map, the player and the renderer together. It is
// the front-end independent part of the game loop: window and terminal
// front-ends feed it key events and elapsed time and present its frames.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/wolfcast/internal/assets"
	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/engine/keyboard"
	"github.com/Faultbox/wolfcast/internal/engine/raycast"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/ui"
	"github.com/Faultbox/wolfcast/internal/game/world"
	"github.com/Faultbox/wolfcast/internal/logger"
)

// Command is a request from the session to its front-end.
type Command uint8

// Commands returned by HandleKey.
const (
	CommandNone Command = iota
	CommandQuit
	CommandScreenshot
)

// Options configures a session.
type Options struct {
	Player        entity.PlayerOptions
	Rays          int // 0 casts one ray per column
	Workers       int // 1 is single-threaded, 0 uses every CPU
	ShadeDistance float64
	Minimap       bool
}

// Session is one play-through of a map.
type Session struct {
	Map    *world.Map
	Player *entity.Player
	Keys   *keyboard.State

	// Status is printed in the bottom-left corner when non-empty.
	Status string

	opts     Options
	renderer raycast.Renderer
	minimap  *ui.Minimap
	frame    *framebuffer.FrameBuffer
	log      *zap.Logger
}

// New starts a session on m.
func New(m *world.Map, opts Options) *Session {
	mm := ui.NewMinimap()
	mm.Label = m.Name

	s := &Session{
		Map:      m,
		Player:   entity.NewPlayer(m.Grid, opts.Player),
		Keys:     &keyboard.State{},
		opts:     opts,
		renderer: raycast.New(opts.Workers, opts.ShadeDistance),
		minimap:  mm,
		frame:    framebuffer.New(1, 1),
		log:      logger.Named("session"),
	}

	s.log.Info("session started",
		zap.String("map", m.Name),
		zap.Int("segments", m.Vectors.Len()),
		zap.Float64("x", s.Player.Position.X),
		zap.Float64("y", s.Player.Position.Y),
	)
	return s
}

// LoadMap loads name from lib. When that fails the built-in default map is
// used instead and the original error is logged.
func LoadMap(lib *assets.Manager, name string) (*world.Map, error) {
	if name == "" {
		name = assets.DefaultMap
	}

	m, err := lib.LoadMap(name)
	if err == nil {
		return m, nil
	}
	if name == assets.DefaultMap {
		return nil, err
	}

	logger.Warn("map failed to load, using default",
		zap.String("map", name),
		zap.String("default", assets.DefaultMap),
		zap.Error(err),
	)
	fallback, ferr := lib.LoadMap(assets.DefaultMap)
	if ferr != nil {
		return nil, fmt.Errorf("loading default map: %w", errors.Join(err, ferr))
	}
	return fallback, nil
}

// HandleKey feeds a key transition into the keyboard state and reports what
// the front-end should do about it.
func (s *Session) HandleKey(ev keyboard.Event) Command {
	s.Keys.ProcessKeyEvent(ev)
	if ev.Action != keyboard.Pressed {
		return CommandNone
	}

	switch ev.Code {
	case keyboard.ScanEscape:
		return CommandQuit
	case keyboard.ScanScreenshot:
		return CommandScreenshot
	case keyboard.ScanMinimap:
		s.opts.Minimap = !s.opts.Minimap
		s.log.Debug("minimap toggled", zap.Bool("visible", s.opts.Minimap))
	}
	return CommandNone
}

// Update advances the player by dt seconds.
func (s *Session) Update(dt float64) {
	s.Player.Advance(s.Keys, s.Map.Vectors, dt)
}

// Render draws the current view into a width x height frame and returns
// it. The frame is reused by the next call.
func (s *Session) Render(width, height int) *framebuffer.FrameBuffer {
	s.frame.Resize(width, height)

	view := s.Player.View()
	rays := s.opts.Rays
	if rays <= 0 {
		rays = s.frame.Width
	}
	s.renderer.RenderFrame(view, s.Map.Vectors, rays, s.frame)

	if s.opts.Minimap {
		s.minimap.Draw(s.frame, s.Map.Vectors, view)
	}
	if s.Status != "" {
		_, h := ui.TextSize(s.Status)
		ui.DrawText(s.frame, 4, s.frame.Height-h-2, s.Status, statusColor)
	}
	return s.frame
}

// Frame returns the last rendered frame.
func (s *Session) Frame() *framebuffer.FrameBuffer {
	return s.frame
}

// MinimapVisible reports whether the minimap overlay is drawn.
func (s *Session) MinimapVisible() bool {
	return s.opts.Minimap
}
