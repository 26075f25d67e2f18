package game

import "github.com/vovakirdan/tui-runner/internal/core"

// FirstCollision returns the index of the first obstacle overlapping box.
// Evaluation stops at the first hit.
func FirstCollision(box core.Rect, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if box.Intersects(o.Rect()) {
			return i, true
		}
	}
	return -1, false
}

// CheckCollision tests if the given rectangle collides with any obstacle.
func (om *ObstacleManager) CheckCollision(box core.Rect) bool {
	_, hit := FirstCollision(box, om.obstacles)
	return hit
}
