package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultPipesYAML []byte

// Default returns the built-in configuration.
// Values follow the classic pipes screensaver: thin lines, a 5% turn chance
// and 60 frames per second.
func Default() Config {
	return Config{
		Style:           StyleNormal,
		TurnChance:      5,
		FrameRate:       60,
		ClearThreshold:  50,
		ClearOnKeypress: false,
		Pipes:           1,
		Seed:            0,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPipesYAML
}
