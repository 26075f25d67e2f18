package tui

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
)

// Sprite and text styling for the terminal canvas.
const (
	spriteRune   = '█'
	spriteEye    = '▀'
	obstacleRune = '▓'
	spriteColor  = core.ColorYellow
	textColor    = core.ColorBrightWhite
)

// Canvas draws world-unit geometry onto a character Screen.
// World coordinates are scaled independently on each axis so the whole
// surface always fits the terminal.
type Canvas struct {
	screen   *core.Screen
	surfaceW float64
	surfaceH float64
}

var _ game.Surface = (*Canvas)(nil)

// NewCanvas wraps screen for a surface of the given world size.
func NewCanvas(screen *core.Screen, surfaceW, surfaceH float64) *Canvas {
	return &Canvas{
		screen:   screen,
		surfaceW: surfaceW,
		surfaceH: surfaceH,
	}
}

// Clear erases the whole surface.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// DrawSprite draws the player square with a pair of eyes when it is big enough.
func (c *Canvas) DrawSprite(r core.Rect) {
	x, y, w, h := c.cells(r)
	c.screen.FillArea(x, y, w, h, spriteRune, spriteColor)
	if w >= 3 && h >= 2 {
		c.screen.SetColored(x+w-2, y, spriteEye, core.ColorGray)
	}
}

// FillRect fills r with a solid color.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	x, y, w, h := c.cells(r)
	c.screen.FillArea(x, y, w, h, obstacleRune, col)
}

// DrawTextCentered draws lines inside a box in the middle of the screen.
func (c *Canvas) DrawTextCentered(lines ...string) {
	if len(lines) == 0 {
		return
	}

	textW := 0
	for _, l := range lines {
		textW = core.Max(textW, len([]rune(l)))
	}

	boxW := textW + 4
	boxH := len(lines) + 2
	boxX := (c.screen.Width() - boxW) / 2
	boxY := (c.screen.Height() - boxH) / 2

	c.screen.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	c.screen.DrawBox(boxX, boxY, boxW, boxH, core.ColorGray)
	for i, l := range lines {
		c.screen.DrawTextCentered(boxY+1+i, l, textColor)
	}
}

// cells converts a world rectangle into a cell rectangle. Any visible box
// covers at least one cell.
func (c *Canvas) cells(r core.Rect) (x, y, w, h int) {
	sx := float64(c.screen.Width()) / c.surfaceW
	sy := float64(c.screen.Height()) / c.surfaceH

	x0 := int(math.Floor(r.X * sx))
	x1 := int(math.Ceil(r.Right() * sx))
	y0 := int(math.Floor(r.Y * sy))
	y1 := int(math.Ceil(r.Bottom() * sy))

	return x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1)
}
