package game

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a block standing on the ground line.
type Obstacle struct {
	X      float64 // Left edge
	Y      float64 // Top edge; Y + Height is the ground line
	Width  float64
	Height float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// It is the only owner of the obstacle sequence.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       *config.RunnerConfig
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg *config.RunnerConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
}

// Update advances the obstacles by one tick: spawn at most one new obstacle,
// scroll every obstacle left, then drop those that left the surface.
// Returns the number of obstacles removed this tick.
func (om *ObstacleManager) Update() int {
	if om.shouldSpawn() {
		om.obstacles = append(om.obstacles, om.spawn())
	}

	speed := om.cfg.Physics.ScrollSpeed
	for i := range om.obstacles {
		om.obstacles[i].X -= speed
	}

	// Filter in place so every obstacle is checked exactly once
	kept := om.obstacles[:0]
	removed := 0
	for _, o := range om.obstacles {
		if o.X+o.Width < 0 {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	om.obstacles = kept

	return removed
}

// shouldSpawn reports whether the most recent obstacle is far enough left.
func (om *ObstacleManager) shouldSpawn() bool {
	if len(om.obstacles) == 0 {
		return true
	}
	last := om.obstacles[len(om.obstacles)-1]
	return last.X < om.cfg.Surface.Width-om.cfg.Obstacles.MinGap
}

// spawn draws a new obstacle just beyond the right edge of the surface.
func (om *ObstacleManager) spawn() Obstacle {
	o := om.cfg.Obstacles

	width := om.uniform(o.MinWidth, o.MaxWidth)
	height := om.uniform(o.MinHeight, o.MaxHeight)
	gap := om.uniform(o.MinGap, o.MaxGap)

	return Obstacle{
		X:      om.cfg.Surface.Width + gap,
		Y:      om.cfg.Surface.Height - height,
		Width:  width,
		Height: height,
	}
}

// uniform returns a value in [lo, hi).
func (om *ObstacleManager) uniform(lo, hi float64) float64 {
	return lo + om.rng.Float64()*(hi-lo)
}

// Obstacles returns a copy of the active obstacles, oldest first.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return slices.Clone(om.obstacles)
}

// Len returns the number of active obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
