// internal/ui/counter.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"golang.org/x/image/font"
)

// DuckCounter — HUD-счётчик: сбитые утки и утки в небе.
type DuckCounter struct {
	X, Y     int
	fontFace font.Face
	color    color.Color
}

func NewDuckCounter(x, y int, fontFace font.Face, clr color.Color) *DuckCounter {
	return &DuckCounter{X: x, Y: y, fontFace: fontFace, color: clr}
}

// Draw отрисовывает счётчик
func (c *DuckCounter) Draw(screen *ebiten.Image, hit, inFlight int) {
	text.Draw(screen, fmt.Sprintf("HIT %d  DUCKS %d", hit, inFlight), c.fontFace, c.X, c.Y, c.color)
}
