// Package config provides YAML-based screensaver configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
)

// Style names a glyph set.
type Style string

const (
	StyleNormal Style = "normal"
	StyleBold   Style = "bold"
	StyleDouble Style = "double"
)

// Styles lists every style the configuration accepts.
var Styles = []Style{StyleNormal, StyleBold, StyleDouble}

// Validation errors. Returned wrapped with the offending value.
var (
	ErrUnknownStyle          = errors.New("unknown style")
	ErrInvalidTurnChance     = errors.New("turn chance must be between 0 and 100")
	ErrInvalidFrameRate      = errors.New("frame rate must be positive")
	ErrInvalidClearThreshold = errors.New("clear threshold must not be negative")
	ErrInvalidPipeCount      = errors.New("pipe count must be at least 1")
)

// Config is the screensaver configuration. It is built once at startup and
// treated as read-only afterwards.
type Config struct {
	Style           Style `yaml:"style"`
	TurnChance      int   `yaml:"turn_chance"`       // Percent, 0-100
	FrameRate       int   `yaml:"frame_rate"`        // Ticks per second
	ClearThreshold  int   `yaml:"clear_threshold"`   // Spawns before the screen is wiped
	ClearOnKeypress bool  `yaml:"clear_on_keypress"` // Non-quit keys clear instead of dismiss
	Pipes           int   `yaml:"pipes"`             // Concurrent pipes
	Seed            int64 `yaml:"seed"`              // 0 means use current time
}

// Validate checks every knob and returns the first violation.
func (c Config) Validate() error {
	if !c.Style.Valid() {
		return fmt.Errorf("config: %w: %q", ErrUnknownStyle, c.Style)
	}
	if c.TurnChance < 0 || c.TurnChance > 100 {
		return fmt.Errorf("config: %w: %d", ErrInvalidTurnChance, c.TurnChance)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("config: %w: %d", ErrInvalidFrameRate, c.FrameRate)
	}
	if c.ClearThreshold < 0 {
		return fmt.Errorf("config: %w: %d", ErrInvalidClearThreshold, c.ClearThreshold)
	}
	if c.Pipes < 1 {
		return fmt.Errorf("config: %w: %d", ErrInvalidPipeCount, c.Pipes)
	}
	return nil
}

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	for _, known := range Styles {
		if s == known {
			return true
		}
	}
	return false
}
