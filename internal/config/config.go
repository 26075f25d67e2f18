// Package config provides YAML-based tuning for the runner: physics
// constants, player and obstacle sizes, and the logical drawing surface.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate for unusable configurations.
var ErrInvalid = errors.New("config: invalid")

// RunnerConfig contains all tuning for the runner game.
type RunnerConfig struct {
	Surface   Surface   `yaml:"surface"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
}

// Surface is the logical drawing area in world units.
// The ground line is the bottom edge of the surface.
type Surface struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics constants are applied once per tick, not per second.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle x decrease per tick
}

// Player defines the square's fixed column and size.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines the random ranges obstacles are drawn from.
type Obstacles struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
	MinGap    float64 `yaml:"min_gap"` // Raised to 2x player width if lower
	MaxGap    float64 `yaml:"max_gap"`
}

// GroundY returns the player's resting y coordinate.
func (c RunnerConfig) GroundY() float64 {
	return c.Surface.Height - c.Player.Height
}

// Validate checks the configuration and normalizes the minimum gap so the
// player can always clear two consecutive obstacles.
func (c *RunnerConfig) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("%w: surface must be positive, got %vx%v", ErrInvalid, c.Surface.Width, c.Surface.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	}
	if c.Player.Height > c.Surface.Height {
		return fmt.Errorf("%w: player taller than surface", ErrInvalid)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive", ErrInvalid)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("%w: jump_impulse must be negative", ErrInvalid)
	}
	if c.Physics.ScrollSpeed <= 0 {
		return fmt.Errorf("%w: scroll_speed must be positive", ErrInvalid)
	}

	o := &c.Obstacles
	if o.MinWidth <= 0 || o.MaxWidth < o.MinWidth {
		return fmt.Errorf("%w: obstacle width range [%v,%v]", ErrInvalid, o.MinWidth, o.MaxWidth)
	}
	if o.MinHeight <= 0 || o.MaxHeight < o.MinHeight {
		return fmt.Errorf("%w: obstacle height range [%v,%v]", ErrInvalid, o.MinHeight, o.MaxHeight)
	}
	if o.MaxHeight > c.Surface.Height {
		return fmt.Errorf("%w: obstacles taller than surface", ErrInvalid)
	}

	if floor := 2 * c.Player.Width; o.MinGap < floor {
		o.MinGap = floor
	}
	if o.MaxGap < o.MinGap {
		return fmt.Errorf("%w: max_gap %v below min_gap %v", ErrInvalid, o.MaxGap, o.MinGap)
	}
	return nil
}
