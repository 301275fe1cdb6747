package game

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

const (
	maxTPS   = 1000
	maxScale = 4.0
)

// Config holds the window and runtime knobs of the windowed binary.
type Config struct {
	TPS      int     // fixed update rate; each tick advances the round by 1/TPS seconds
	Scale    float64 // window scale over the 576x576 logical screen
	Title    string
	LogLevel string
	Debug    bool // draw the tick/state overlay
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		TPS:      120,
		Scale:    1,
		Title:    "Lanes",
		LogLevel: "info",
	}
}

// Validate checks ranges and that LogLevel parses.
func (c Config) Validate() error {
	if c.TPS <= 0 || c.TPS > maxTPS {
		return fmt.Errorf("tps %d not in 1..%d: %w", c.TPS, maxTPS, ErrInvalidConfig)
	}
	if c.Scale <= 0 || c.Scale > maxScale {
		return fmt.Errorf("scale %.2f not in (0,%.0f]: %w", c.Scale, maxScale, ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %v: %w", err, ErrInvalidConfig)
	}
	return nil
}

// Dt is the simulated time of one tick in seconds.
func (c Config) Dt() float64 { return 1 / float64(c.TPS) }

// Level returns the parsed log level, falling back to Info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// WindowSize returns the scaled window dimensions.
func (c Config) WindowSize() (int, int) {
	return int(ScreenWidth * c.Scale), int(ScreenHeight * c.Scale)
}
