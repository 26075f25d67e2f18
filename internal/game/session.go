package game

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Session owns a World and advances it one tick at a time.
type Session struct {
	cfg    config.RunnerConfig
	world  World
	paused bool
	seed   int64
}

// NewSession creates a session and starts the first run.
func NewSession(cfg config.RunnerConfig, seed int64) *Session {
	s := &Session{cfg: cfg}
	s.Reset(seed)
	return s
}

// Reset starts a fresh run: player on the ground at rest, no obstacles,
// zero score, Playing.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.paused = false

	if s.world.Obstacles == nil {
		s.world.Obstacles = NewObstacleManager(seed, &s.cfg)
	} else {
		s.world.Obstacles.Reset(seed)
	}

	s.world.Player = newPlayer(s.cfg)
	s.world.Score = 0
	s.world.State = Playing
	s.world.Ticks = 0
}

// Jump requests a jump. Ignored while airborne, paused or after game over.
func (s *Session) Jump() bool {
	if s.world.State != Playing || s.paused {
		return false
	}
	return s.world.Player.Jump(s.cfg.Physics.JumpImpulse)
}

// Step advances the run by one tick: jump input, player physics, obstacles,
// then collision. It does nothing once the run is over.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.world.State == GameOver {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionJump) {
		s.Jump()
	}

	s.world.Ticks++
	s.world.Player.Update(s.cfg.Physics.Gravity, s.cfg.GroundY())

	cleared := s.world.Obstacles.Update()
	s.world.Score += cleared

	result := core.StepResult{Cleared: cleared}
	if s.world.Obstacles.CheckCollision(s.world.Player.Rect()) {
		s.world.State = GameOver
		result.Collided = true
	}

	result.State = s.State()
	return result
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.world.Score,
		GameOver: s.world.State == GameOver,
		Paused:   s.paused,
	}
}

// RunState returns whether the run is still in progress.
func (s *Session) RunState() RunState {
	return s.world.State
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.world.Player
}

// Obstacles returns a copy of the active obstacles.
func (s *Session) Obstacles() []Obstacle {
	return s.world.Obstacles.Obstacles()
}

// Ticks returns the number of ticks simulated in this run.
func (s *Session) Ticks() int {
	return s.world.Ticks
}

// Seed returns the seed the current run was started with.
func (s *Session) Seed() int64 {
	return s.seed
}

// Config returns the session's tuning.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}

// Render draws the current frame. After game over it also writes the
// centered result lines.
func (s *Session) Render(dst Surface) {
	dst.Clear()
	dst.DrawSprite(s.world.Player.Rect())
	for _, o := range s.world.Obstacles.obstacles {
		dst.FillRect(o.Rect(), ObstacleColor)
	}

	switch {
	case s.world.State == GameOver:
		dst.DrawTextCentered("Game Over", fmt.Sprintf("Score: %d", s.world.Score))
	case s.paused:
		dst.DrawTextCentered("Paused", "Press P to resume")
	}
}
