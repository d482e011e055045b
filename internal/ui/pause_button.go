// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы в углу экрана. На клик коротко «подпрыгивает».
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	IconColor     color.Color
}

func NewPauseButton(x, y, size float32, iconColor color.Color) *PauseButton {
	return &PauseButton{
		X:         x,
		Y:         y,
		Size:      size,
		IconColor: iconColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play) из трёх штрихов
		vector.StrokeLine(screen, b.X-s/2, b.Y-s/2, b.X-s/2, b.Y+s/2, 2, b.IconColor, true)
		vector.StrokeLine(screen, b.X-s/2, b.Y-s/2, b.X+s/2, b.Y, 2, b.IconColor, true)
		vector.StrokeLine(screen, b.X-s/2, b.Y+s/2, b.X+s/2, b.Y, 2, b.IconColor, true)
	} else {
		// Две вертикальные полоски (pause)
		w := s * 0.3
		vector.DrawFilledRect(screen, b.X-w*1.5, b.Y-s/2, w, s, b.IconColor, false)
		vector.DrawFilledRect(screen, b.X+w*0.5, b.Y-s/2, w, s, b.IconColor, false)
	}
}

// IsClicked проверяет, был ли клик внутри кнопки
func (b *PauseButton) IsClicked(mx, my float64) bool {
	dx := mx - float64(b.X)
	dy := my - float64(b.Y)
	return math.Sqrt(dx*dx+dy*dy) <= float64(b.Size)
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
