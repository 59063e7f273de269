// Package main runs the raycaster inside a terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/wolfcast/internal/config"
	"github.com/Faultbox/wolfcast/internal/engine/debug"
	"github.com/Faultbox/wolfcast/internal/engine/keyboard"
	"github.com/Faultbox/wolfcast/internal/engine/term"
	"github.com/Faultbox/wolfcast/internal/game/session"
	"github.com/Faultbox/wolfcast/internal/logger"
)

const defaultLogFile = "wolfterm.log"

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The terminal is the display, so logs only go to a file.
	logFile := cfg.Logging.LogFile
	if logFile == "" {
		logFile = defaultLogFile
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, logger.DefaultFileConfig(logFile), false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("terminal session failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	s, err := session.Start(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	out := term.New(screen)
	keys := term.NewKeyTracker(s.Keys, cfg.Terminal.KeyHold)
	shots := debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "wolfterm")
	log := logger.Named("wolfterm")

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(cfg.Terminal.Tick)
	defer ticker.Stop()

	var fps session.FPSCounter
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				out.Resize()
			case *tcell.EventKey:
				code := term.Translate(ev)
				if !keys.Press(code, time.Now()) {
					continue
				}
				switch s.HandleKey(keyboard.Event{Code: code, Action: keyboard.Pressed}) {
				case session.CommandQuit:
					log.Info("quit requested")
					return nil
				case session.CommandScreenshot:
					if path, err := shots.Capture(s.Frame()); err != nil {
						log.Error("screenshot failed", zap.Error(err))
					} else {
						log.Info("screenshot saved", zap.String("path", path))
					}
				}
			}

		case now := <-ticker.C:
			keys.Expire(now)
			s.Update(now.Sub(last).Seconds())
			last = now

			out.Present(s.Render(out.FrameSize()))

			if fps.Tick(now) {
				log.Debug("fps", zap.Float64("fps", fps.FPS()))
				if cfg.Logging.Level == "debug" {
					s.Status = s.StatusLine(fps.FPS())
				}
			}
		}
	}
}

// pollEvents forwards screen events to events until the screen is finalized
// or done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	// PollEvent returns nil once the screen is finalized.
	for ev := screen.PollEvent(); ev != nil; ev = screen.PollEvent() {
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
