package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestCanvasCells(t *testing.T) {
	screen := core.NewScreen(80, 20)
	c := NewCanvas(screen, 800, 400)

	tests := []struct {
		name       string
		rect       core.Rect
		x, y, w, h int
	}{
		{"player on ground", core.NewRect(50, 350, 50, 50), 5, 17, 5, 3},
		{"full surface", core.NewRect(0, 0, 800, 400), 0, 0, 80, 20},
		{"tiny box", core.NewRect(1, 1, 1, 1), 0, 0, 1, 1},
		{"partly off screen", core.NewRect(-30, 300, 40, 100), -3, 15, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := c.cells(tt.rect)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("cells(%+v) = (%d,%d,%d,%d), expected (%d,%d,%d,%d)",
					tt.rect, x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestCanvasDrawing(t *testing.T) {
	screen := core.NewScreen(80, 20)
	c := NewCanvas(screen, 800, 400)

	c.DrawSprite(core.NewRect(50, 350, 50, 50))
	if got := screen.GetCell(5, 19); got.Rune != spriteRune || got.Color != spriteColor {
		t.Errorf("sprite cell = %+v", got)
	}

	c.FillRect(core.NewRect(400, 300, 30, 100), core.ColorHotPink)
	if got := screen.GetCell(40, 19); got.Rune != obstacleRune || got.Color != core.ColorHotPink {
		t.Errorf("obstacle cell = %+v", got)
	}

	c.Clear()
	if screen.GetCell(5, 19).Rune != ' ' {
		t.Error("Clear() should blank the screen")
	}
}

func TestCanvasDrawTextCentered(t *testing.T) {
	screen := core.NewScreen(40, 10)
	c := NewCanvas(screen, 800, 400)

	c.DrawTextCentered("Game Over", "Score: 7")

	out := screen.String()
	for _, want := range []string{"Game Over", "Score: 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}

	// Box is 4 rows tall, so the first line sits on row 4
	if got := screen.GetCell((40-len("Game Over"))/2, 4); got.Rune != 'G' || got.Color != textColor {
		t.Errorf("first line not centered, got %+v", got)
	}
	if got := screen.GetCell((40-len("Score: 7"))/2, 5); got.Rune != 'S' {
		t.Errorf("second line not centered, got %+v", got)
	}
}
