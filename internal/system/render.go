// internal/system/render.go
package system

import (
	"image/color"

	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/defs"
	"go-duck-hunt/internal/entity"
	"go-duck-hunt/internal/utils"
	"go-duck-hunt/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности. Спрайтовых атласов в репозитории нет,
// поэтому актёры собираются из примитивов ebiten/vector по кадру спрайта.
type RenderSystem struct {
	ecs          *entity.ECS
	showHitboxes bool
	colorCache   map[string]color.RGBA
}

func NewRenderSystem(ecs *entity.ECS, showHitboxes bool) *RenderSystem {
	return &RenderSystem{
		ecs:          ecs,
		showHitboxes: showHitboxes,
		colorCache:   make(map[string]color.RGBA),
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for id, sprite := range s.ecs.Sprites {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		def, ok := defs.ActorLibrary[sprite.DefID]
		if !ok {
			continue
		}

		sx := float32(pos.X + config.ScreenWidth/2.0)
		sy := float32(config.ScreenHeight/2.0 - pos.Y)
		body := s.hexColor(def.Visuals.Body)
		accent := s.hexColor(def.Visuals.Accent)

		if _, isDuck := s.ecs.Ducks[id]; isDuck {
			s.drawDuck(screen, sx, sy, float32(def.TileWidth), sprite, body, accent)
			if s.showHitboxes && def.HitHalfExtent > 0 {
				he := float32(def.HitHalfExtent)
				vector.StrokeRect(screen, sx-he, sy-he, 2*he, 2*he, 1, config.HitboxColor, false)
			}
			continue
		}
		s.drawDog(screen, sx, sy, float32(def.TileWidth), float32(def.TileHeight), sprite, body, accent)
	}
}

// drawDuck — тело, голова по направлению полёта и крыло, положение
// которого задаёт кадр цикла. Кадры шлепка и падения рисуются отдельно.
func (s *RenderSystem) drawDuck(screen *ebiten.Image, sx, sy, tile float32, sprite *component.Sprite, body, accent color.RGBA) {
	r := tile * 0.28
	dir := float32(1)
	if sprite.FlipX {
		dir = -1
	}
	// Кривые определения не должны ронять отрисовку.
	frame := int(utils.Clamp(float64(sprite.FrameIndex), 0, 4))

	switch {
	case frame >= 4:
		// Финальный кадр: утка камнем вниз.
		vector.DrawFilledCircle(screen, sx, sy, r*0.8, body, true)
		vector.StrokeLine(screen, sx, sy, sx, sy+r*1.6, 2, accent, true)
	case frame == 3:
		// Шлепок: распластанное тело.
		vector.DrawFilledCircle(screen, sx-r*0.6, sy, r*0.7, body, true)
		vector.DrawFilledCircle(screen, sx+r*0.6, sy, r*0.7, body, true)
		vector.StrokeLine(screen, sx-r, sy-r, sx+r, sy+r, 1, accent, true)
		vector.StrokeLine(screen, sx-r, sy+r, sx+r, sy-r, 1, accent, true)
	default:
		vector.DrawFilledCircle(screen, sx, sy, r, body, true)
		vector.DrawFilledCircle(screen, sx+dir*r*0.9, sy-r*0.5, r*0.5, body, true)
		vector.DrawFilledCircle(screen, sx+dir*r*1.3, sy-r*0.5, r*0.2, accent, true)
		// Крыло: вверх, в сторону, вниз — по кадру цикла.
		wingY := sy + r*float32(utils.Lerp(-0.9, 0.9, float64(frame)/2.0))
		vector.StrokeLine(screen, sx, sy, sx-dir*r*1.2, wingY, 2, body, true)
	}
}

func (s *RenderSystem) drawDog(screen *ebiten.Image, sx, sy, w, h float32, sprite *component.Sprite, body, accent color.RGBA) {
	vector.DrawFilledRect(screen, sx-w/2, sy-h/4, w, h/2, body, true)
	vector.DrawFilledCircle(screen, sx+w*0.35, sy-h*0.3, h*0.25, body, true)
	// Нос подрагивает по кадрам idle-цикла.
	bob := float32(sprite.FrameIndex%2) * 1.5
	vector.DrawFilledCircle(screen, sx+w*0.48, sy-h*0.3+bob, h*0.08, accent, true)
}

func (s *RenderSystem) hexColor(hex string) color.RGBA {
	if c, ok := s.colorCache[hex]; ok {
		return c
	}
	c := render.ParseHexColor(hex, color.RGBA{0, 0, 0, 0xFF})
	s.colorCache[hex] = c
	return c
}
