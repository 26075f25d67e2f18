package config

import _ "embed"

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Surface: Surface{
			Width:  800,
			Height: 400,
		},
		Physics: Physics{
			Gravity:     0.5,
			JumpImpulse: -12,
			ScrollSpeed: 5,
		},
		Player: Player{
			X:      50,
			Width:  50,
			Height: 50,
		},
		Obstacles: Obstacles{
			MinWidth:  20,
			MaxWidth:  40,
			MinHeight: 40,
			MaxHeight: 100,
			MinGap:    100,
			MaxGap:    500,
		},
	}
}
