// internal/system/shooting.go
package system

import (
	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/defs"
	"go-duck-hunt/internal/entity"
	"go-duck-hunt/internal/event"
	"go-duck-hunt/internal/types"
	"math"
)

// ShootingSystem превращает выстрел в переходы уток в состояние Dying.
// Хитбокс — квадрат с полуразмером из определения актёра, границы
// включительно. Один выстрел валит все утки, чьи хитбоксы накрывают
// точку, без остановки на первом совпадении.
type ShootingSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewShootingSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ShootingSystem {
	return &ShootingSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// ScreenToWorld переводит координаты курсора в мировые: центрирование
// относительно логического поля 256×240 и переворот оси Y.
func ScreenToWorld(screenX, screenY float64) (float64, float64) {
	return screenX - config.ScreenWidth/2.0, config.ScreenHeight/2.0 - screenY
}

// Resolve обрабатывает один выстрел в мировых координатах и возвращает
// ID задетых уток.
func (s *ShootingSystem) Resolve(worldX, worldY float64) []types.EntityID {
	var hits []types.EntityID
	for id, duck := range s.ecs.Ducks {
		if duck.Dead {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		def, ok := defs.ActorLibrary[duck.DefID]
		if !ok || def.HitHalfExtent <= 0 {
			continue
		}

		if math.Abs(worldX-pos.X) <= def.HitHalfExtent &&
			math.Abs(worldY-pos.Y) <= def.HitHalfExtent {
			duck.Behavior = component.Dying
			hits = append(hits, id)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.DuckHit,
				Data: event.DuckHitData{ID: id, ShotX: worldX, ShotY: worldY},
			})
		}
	}
	return hits
}
