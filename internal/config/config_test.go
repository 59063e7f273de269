package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Render.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Render.FOVDegrees)
	}
	if cfg.Render.Rays != 0 {
		t.Errorf("expected one ray per column by default, got %d", cfg.Render.Rays)
	}
	if cfg.Player.Radius != 0.2 {
		t.Errorf("expected radius 0.2, got %v", cfg.Player.Radius)
	}
	if cfg.Terminal.KeyHold != 150*time.Millisecond {
		t.Errorf("expected key hold 150ms, got %v", cfg.Terminal.KeyHold)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative rays", func(c *Config) { c.Render.Rays = -1 }},
		{"zero scale", func(c *Config) { c.Render.Scale = 0 }},
		{"zero fov", func(c *Config) { c.Render.FOVDegrees = 0 }},
		{"straight fov", func(c *Config) { c.Render.FOVDegrees = 180 }},
		{"negative workers", func(c *Config) { c.Render.Workers = -2 }},
		{"negative move speed", func(c *Config) { c.Player.MoveSpeed = -1 }},
		{"negative rotate speed", func(c *Config) { c.Player.RotateSpeed = -1 }},
		{"radius fills cell", func(c *Config) { c.Player.Radius = 0.5 }},
		{"zero tick", func(c *Config) { c.Terminal.Tick = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestFrameSize(t *testing.T) {
	cfg := Default()
	if w, h := cfg.FrameSize(1280, 720); w != 640 || h != 360 {
		t.Errorf("expected 640x360, got %dx%d", w, h)
	}
	if w, h := cfg.FrameSize(1, 1); w != 1 || h != 1 {
		t.Errorf("expected frame size clamped to 1x1, got %dx%d", w, h)
	}

	cfg.Render.Scale = 1
	if w, h := cfg.FrameSize(800, 600); w != 800 || h != 600 {
		t.Errorf("expected 800x600 at scale 1, got %dx%d", w, h)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

render:
  rays: 320
  scale: 3
  fov_degrees: 75
  workers: 4
  shade_distance: 9
  minimap: true

player:
  move_speed: 4
  rotate_speed: 2
  radius: 0.25

map:
  path: "e1m1"
  dirs: ["maps", "/usr/share/wolfcast/maps"]

terminal:
  tick: 50ms
  key_hold: 200ms

logging:
  level: "debug"
  log_file: "wolf.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen || cfg.Graphics.VSync {
		t.Error("graphics flags not loaded")
	}
	if cfg.Render.Rays != 320 || cfg.Render.Scale != 3 || cfg.Render.Workers != 4 {
		t.Errorf("render section not loaded: %+v", cfg.Render)
	}
	if cfg.Render.FOVDegrees != 75 || !cfg.Render.Minimap {
		t.Errorf("render section not loaded: %+v", cfg.Render)
	}
	if cfg.Player.MoveSpeed != 4 || cfg.Player.Radius != 0.25 {
		t.Errorf("player section not loaded: %+v", cfg.Player)
	}
	if cfg.Map.Path != "e1m1" || len(cfg.Map.Dirs) != 2 {
		t.Errorf("map section not loaded: %+v", cfg.Map)
	}
	if cfg.Terminal.Tick != 50*time.Millisecond || cfg.Terminal.KeyHold != 200*time.Millisecond {
		t.Errorf("terminal section not loaded: %+v", cfg.Terminal)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "wolf.log" {
		t.Errorf("logging section not loaded: %+v", cfg.Logging)
	}

	// Keys missing from the file keep their defaults.
	if cfg.Render.ScreenshotDir != "screenshots" {
		t.Errorf("expected default screenshot dir, got %q", cfg.Render.ScreenshotDir)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      "graphics:\n  width: not a number\n  invalid syntax here\n",
		"unknown key": "render:\n  raays: 10\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if cfg.Graphics.Width != 1280 {
		t.Error("empty file should keep defaults")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Render.Rays = 96
	cfg.Map.Dirs = []string{"maps"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Render.Rays != 96 || len(loaded.Map.Dirs) != 1 {
		t.Errorf("saved values lost: %+v %+v", loaded.Render, loaded.Map)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "map flag",
			setup: func() { *flagMap = "maps/e1m2.txt" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Map.Path != "maps/e1m2.txt" {
					t.Errorf("expected map path override, got %s", cfg.Map.Path)
				}
			},
			teardown: func() { *flagMap = "" },
		},
		{
			name: "rays and workers flags",
			setup: func() {
				*flagRays = 128
				*flagWorkers = 1
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.Rays != 128 || cfg.Render.Workers != 1 {
					t.Errorf("expected rays 128 workers 1, got %d %d", cfg.Render.Rays, cfg.Render.Workers)
				}
			},
			teardown: func() {
				*flagRays = -1
				*flagWorkers = -1
			},
		},
		{
			name:  "unset rays flag keeps config",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.Rays != 0 || cfg.Render.Workers != 0 {
					t.Errorf("expected defaults, got rays %d workers %d", cfg.Render.Rays, cfg.Render.Workers)
				}
			},
			teardown: func() {},
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  fov_degrees: 200\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
