package game

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the jumping square. X never changes; the world scrolls instead.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelY          float64 // Positive = falling
	Airborne      bool
}

// newPlayer places a player at rest on the ground line.
func newPlayer(cfg config.RunnerConfig) Player {
	return Player{
		X:      cfg.Player.X,
		Y:      cfg.GroundY(),
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	}
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Jump starts a jump if the player is on the ground.
// It reports whether the jump was accepted.
func (p *Player) Jump(impulse float64) bool {
	if p.Airborne {
		return false
	}
	p.VelY = impulse
	p.Airborne = true
	return true
}

// Update applies one tick of gravity and lands the player on groundY.
func (p *Player) Update(gravity, groundY float64) {
	p.VelY += gravity
	p.Y += p.VelY

	if p.Y > groundY {
		p.Y = groundY
		p.VelY = 0
		p.Airborne = false
	}
}
