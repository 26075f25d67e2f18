package game

import "github.com/vovakirdan/tui-runner/internal/core"

// ObstacleColor is the fill used for every obstacle.
const ObstacleColor = core.ColorHotPink

// Surface is the drawing target for a frame, in world units.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// DrawSprite draws the player sprite scaled into r.
	DrawSprite(r core.Rect)
	// FillRect fills r with a solid color.
	FillRect(r core.Rect, c core.Color)
	// DrawTextCentered draws lines centered on the surface, top to bottom.
	DrawTextCentered(lines ...string)
}
