// Package game implements the square runner: a square jumps over obstacles
// scrolling in from the right until it hits one.
//
// All mutable run state lives in a World owned by a Session. The platform
// layer drives the Session one tick at a time and draws it onto a Surface.
package game

// RunState is the run's lifecycle state.
type RunState int

const (
	Playing RunState = iota
	GameOver
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// World is the complete mutable state of one run.
type World struct {
	Player    Player
	Obstacles *ObstacleManager
	Score     int // Obstacles cleared; never decreases within a run
	State     RunState
	Ticks     int // Ticks simulated since the run started
}
