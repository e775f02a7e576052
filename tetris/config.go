package tetris

import (
	"errors"
	"fmt"
)

const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultInitialSpeed = 15
	DefaultMinSpeed     = 5

	// Narrower boards cannot hold an I piece at the spawn column, shorter ones cannot
	// hold any spawned piece.
	minWidth  = 4
	minHeight = 2
)

var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownCommand reports a command value or name outside the defined set.
	ErrUnknownCommand = errors.New("unknown command")
)

// ConfigError describes the first invalid field found by Config.Validate.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s=%d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Config holds the fixed parameters of a session. Speeds are gravity intervals in ticks
// per row, so a lower value falls faster.
type Config struct {
	Width        int
	Height       int
	InitialSpeed int
	MinSpeed     int
	Seed         uint64
}

// DefaultConfig returns the classic 10x20 board with a 15 tick gravity interval that
// accelerates down to 5.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		InitialSpeed: DefaultInitialSpeed,
		MinSpeed:     DefaultMinSpeed,
	}
}

// Validate checks the configuration and returns a *ConfigError for the first bad field.
func (c Config) Validate() error {
	switch {
	case c.Width < minWidth:
		return &ConfigError{Field: "width", Value: c.Width, Reason: fmt.Sprintf("must be at least %d", minWidth)}
	case c.Height < minHeight:
		return &ConfigError{Field: "height", Value: c.Height, Reason: fmt.Sprintf("must be at least %d", minHeight)}
	case c.MinSpeed < 1:
		return &ConfigError{Field: "min_speed", Value: c.MinSpeed, Reason: "must be positive"}
	case c.InitialSpeed < c.MinSpeed:
		return &ConfigError{Field: "initial_speed", Value: c.InitialSpeed, Reason: fmt.Sprintf("must not be below min_speed %d", c.MinSpeed)}
	}
	return nil
}
