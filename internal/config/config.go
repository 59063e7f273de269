// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Player   PlayerConfig   `yaml:"player"`
	Map      MapConfig      `yaml:"map"`
	Terminal TerminalConfig `yaml:"terminal"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// RenderConfig holds raycaster settings.
type RenderConfig struct {
	Rays          int     `yaml:"rays"`  // 0 casts one ray per column
	Scale         int     `yaml:"scale"` // window pixels per frame buffer pixel
	FOVDegrees    float64 `yaml:"fov_degrees"`
	Workers       int     `yaml:"workers"` // 1 is single-threaded, 0 uses every CPU
	ShadeDistance float64 `yaml:"shade_distance"`
	Minimap       bool    `yaml:"minimap"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// PlayerConfig holds movement settings.
type PlayerConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`   // cells per second
	RotateSpeed float64 `yaml:"rotate_speed"` // radians per second
	Radius      float64 `yaml:"radius"`
}

// MapConfig selects the map to play.
type MapConfig struct {
	Path string   `yaml:"path"` // file path or library name
	Dirs []string `yaml:"dirs"` // extra map directories
}

// TerminalConfig holds settings of the terminal front-end.
type TerminalConfig struct {
	Tick    time.Duration `yaml:"tick"`
	KeyHold time.Duration `yaml:"key_hold"` // terminals report no key-up; keys release after this
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Render: RenderConfig{
			Scale:         2,
			FOVDegrees:    60,
			ShadeDistance: 12,
			ScreenshotDir: "screenshots",
		},
		Player: PlayerConfig{
			MoveSpeed:   3,
			RotateSpeed: 2.5,
			Radius:      0.2,
		},
		Terminal: TerminalConfig{
			Tick:    33 * time.Millisecond,
			KeyHold: 150 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings the renderer and the player cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Render.Rays < 0:
		return fmt.Errorf("%w: rays %d", ErrInvalid, c.Render.Rays)
	case c.Render.Scale < 1:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Render.Scale)
	case c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov %.1f outside (0, 180)", ErrInvalid, c.Render.FOVDegrees)
	case c.Render.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Render.Workers)
	case c.Player.MoveSpeed < 0 || c.Player.RotateSpeed < 0:
		return fmt.Errorf("%w: negative player speed", ErrInvalid)
	case c.Player.Radius < 0 || c.Player.Radius >= 0.5:
		return fmt.Errorf("%w: player radius %.2f outside [0, 0.5)", ErrInvalid, c.Player.Radius)
	case c.Terminal.Tick <= 0:
		return fmt.Errorf("%w: terminal tick %v", ErrInvalid, c.Terminal.Tick)
	}
	return nil
}

// FrameSize returns the frame buffer size for the current window size.
func (c *Config) FrameSize(windowW, windowH int) (int, int) {
	scale := max(c.Render.Scale, 1)
	return max(windowW/scale, 1), max(windowH/scale, 1)
}
