// internal/system/movement.go
package system

import (
	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/entity"
)

// MovementSystem двигает летящих уток. Утки летят по диагонали вверх;
// у горизонтальных границ направление разворачивается. Умирающие и
// мёртвые утки этой системой не трогаются — падение обрабатывает
// DeathSystem.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, duck := range s.ecs.Ducks {
		if duck.Dead || duck.Behavior == component.Dying {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		vx := duck.Speed
		if duck.Behavior == component.FlyingLeft {
			vx = -duck.Speed
		}
		pos.X += vx * deltaTime
		pos.Y += duck.Speed * deltaTime

		// Проверки границ независимы: на самой границе порядок не важен.
		if pos.X > config.FlightBoundX {
			duck.Behavior = component.FlyingLeft
		}
		if pos.X < -config.FlightBoundX {
			duck.Behavior = component.FlyingRight
		}
	}
}
