// internal/system/death.go
package system

import (
	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/entity"
	"go-duck-hunt/internal/event"
)

// DeathSystem ведёт утку от попадания до удаления: подстреленные падают
// с постоянной скоростью, за нижней границей помечаются мёртвыми, а все
// мёртвые убираются из мира в том же проходе.
type DeathSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewDeathSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *DeathSystem {
	return &DeathSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *DeathSystem) Update(deltaTime float64) {
	// Падение подстреленных. Скорость падения не зависит от скорости полёта.
	for id, duck := range s.ecs.Ducks {
		if duck.Dead || duck.Behavior != component.Dying {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		pos.Y -= config.FallSpeed * deltaTime
		if pos.Y < config.DespawnY {
			duck.Dead = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.DuckFallen, Data: id})
		}
	}

	// Уборка мёртвых — безусловная, каждый кадр.
	for id, duck := range s.ecs.Ducks {
		if !duck.Dead {
			continue
		}
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.DuckRemoved, Data: id})
	}
}
