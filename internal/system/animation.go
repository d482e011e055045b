// internal/system/animation.go
package system

import (
	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/defs"
	"go-duck-hunt/internal/entity"
)

// AnimationSystem листает кадры спрайтов по таймерам сущностей.
// У летящих уток — зацикленные кадры полёта с зеркалированием влево,
// у умирающих — разовый «шлепок» с последующим докатом до финального кадра.
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	for id, sprite := range s.ecs.Sprites {
		duck, isDuck := s.ecs.Ducks[id]
		if isDuck && duck.Dead {
			continue
		}
		timer, hasTimer := s.ecs.AnimTimers[id]
		if !hasTimer {
			continue
		}
		timer.Tick(deltaTime)

		def, ok := defs.ActorLibrary[sprite.DefID]
		if !ok {
			continue
		}

		if !isDuck {
			// Декорации (собака): простой цикл по всем кадрам.
			if timer.JustCompleted() && def.FrameCount > 0 {
				sprite.FrameIndex = (sprite.FrameIndex + 1) % def.FrameCount
			}
			continue
		}

		switch duck.Behavior {
		case component.FlyingLeft, component.FlyingRight:
			sprite.FlipX = duck.Behavior == component.FlyingLeft
			if timer.JustCompleted() {
				sprite.FrameIndex++
				if sprite.FrameIndex >= def.FlyFrames {
					sprite.FrameIndex = 0
				}
			}
		case component.Dying:
			if sprite.FrameIndex < def.SplatFrame {
				// Разовый переход на кадр шлепка. Сброс таймера держит
				// его полный интервал независимо от набежавшей фазы.
				sprite.FrameIndex = def.SplatFrame
				timer.Reset()
			}
			if timer.JustCompleted() {
				sprite.FlipX = !sprite.FlipX
				if sprite.FrameIndex < def.FinalFrame {
					sprite.FrameIndex++
				}
			}
		}
	}
}
