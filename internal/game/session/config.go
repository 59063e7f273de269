package session

import (
	"fmt"

	"github.com/Faultbox/wolfcast/internal/assets"
	"github.com/Faultbox/wolfcast/internal/config"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/pkg/math"
)

// OptionsFromConfig maps the render and player sections of cfg to session
// options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Player: entity.PlayerOptions{
			FOV:         math.Radians(cfg.Render.FOVDegrees),
			MoveSpeed:   cfg.Player.MoveSpeed,
			RotateSpeed: cfg.Player.RotateSpeed,
			Radius:      cfg.Player.Radius,
		},
		Rays:          cfg.Render.Rays,
		Workers:       cfg.Render.Workers,
		ShadeDistance: cfg.Render.ShadeDistance,
		Minimap:       cfg.Render.Minimap,
	}
}

// Start builds the map library from cfg, loads the configured map and opens
// a session on it.
func Start(cfg *config.Config) (*Session, error) {
	lib := assets.NewManager()
	defer lib.Close()

	for _, dir := range cfg.Map.Dirs {
		if err := lib.AddDir(dir); err != nil {
			return nil, fmt.Errorf("adding map dir: %w", err)
		}
	}

	m, err := LoadMap(lib, cfg.Map.Path)
	if err != nil {
		return nil, err
	}
	return New(m, OptionsFromConfig(cfg)), nil
}
