// internal/system/animation_test.go
package system

import (
	"testing"

	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/defs"
	"go-duck-hunt/internal/entity"
	"go-duck-hunt/internal/types"
)

func newAnimWorld() (*entity.ECS, *AnimationSystem) {
	defs.UseDefaults()
	ecs := entity.NewECS()
	return ecs, NewAnimationSystem(ecs)
}

func addAnimatedDuck(ecs *entity.ECS, behavior component.DuckBehavior) (types.EntityID, *component.Sprite) {
	id := ecs.NewEntity()
	sprite := &component.Sprite{DefID: config.DuckDefID}
	ecs.Positions[id] = &component.Position{}
	ecs.Ducks[id] = &component.Duck{DefID: config.DuckDefID, Behavior: behavior, Speed: 20}
	ecs.Sprites[id] = sprite
	ecs.AnimTimers[id] = component.NewTimer(config.AnimationInterval, true)
	return id, sprite
}

func TestFlightCycleWrapsAtThreeFrames(t *testing.T) {
	ecs, s := newAnimWorld()
	_, sprite := addAnimatedDuck(ecs, component.FlyingRight)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		s.Update(config.AnimationInterval)
		if sprite.FrameIndex != w {
			t.Errorf("Completion %d: expected frame %d, got %d", i+1, w, sprite.FrameIndex)
		}
	}
	if sprite.FlipX {
		t.Error("Expected no mirroring for FlyingRight")
	}
}

func TestFlyingLeftIsMirrored(t *testing.T) {
	ecs, s := newAnimWorld()
	_, sprite := addAnimatedDuck(ecs, component.FlyingLeft)

	s.Update(0.1)

	if !sprite.FlipX {
		t.Error("Expected FlipX for FlyingLeft")
	}
}

func TestNoFrameAdvanceBetweenCompletions(t *testing.T) {
	ecs, s := newAnimWorld()
	_, sprite := addAnimatedDuck(ecs, component.FlyingRight)

	s.Update(0.2)
	s.Update(0.2)

	if sprite.FrameIndex != 0 {
		t.Errorf("Expected frame 0 before the timer completes, got %d", sprite.FrameIndex)
	}
}

func TestDyingSplatHoldsFullInterval(t *testing.T) {
	ecs, s := newAnimWorld()
	id, sprite := addAnimatedDuck(ecs, component.FlyingRight)

	// Набегаем фазу таймера, затем подстреливаем утку.
	s.Update(0.4)
	ecs.Ducks[id].Behavior = component.Dying

	s.Update(0.2)
	// Без сброса таймер бы завершился (0.4+0.2 > 0.5); сброс держит шлепок.
	if sprite.FrameIndex != 3 {
		t.Errorf("Expected splat frame 3, got %d", sprite.FrameIndex)
	}

	s.Update(0.2)
	if sprite.FrameIndex != 3 {
		t.Errorf("Expected splat to hold before a full interval, got %d", sprite.FrameIndex)
	}

	// Полный интервал с момента шлепка — докат на финальный кадр.
	s.Update(0.3)
	if sprite.FrameIndex != 4 {
		t.Errorf("Expected frame 4 after the splat interval, got %d", sprite.FrameIndex)
	}
}

func TestDyingClampsAtFinalFrame(t *testing.T) {
	ecs, s := newAnimWorld()
	id, sprite := addAnimatedDuck(ecs, component.FlyingRight)
	ecs.Ducks[id].Behavior = component.Dying

	for i := 0; i < 5; i++ {
		s.Update(config.AnimationInterval)
	}

	if sprite.FrameIndex != 4 {
		t.Errorf("Expected frame clamped at 4, got %d", sprite.FrameIndex)
	}
}

func TestDyingTogglesMirrorOnEachCompletion(t *testing.T) {
	ecs, s := newAnimWorld()
	id, sprite := addAnimatedDuck(ecs, component.FlyingRight)
	ecs.Ducks[id].Behavior = component.Dying

	s.Update(0.1) // переход на шлепок, сброс таймера
	flip := sprite.FlipX

	s.Update(config.AnimationInterval)
	if sprite.FlipX == flip {
		t.Error("Expected mirror toggle on the first completion after the splat")
	}
	s.Update(config.AnimationInterval)
	if sprite.FlipX != flip {
		t.Error("Expected mirror toggle on every completion while dying")
	}
}

func TestDeadDuckFrameIsFrozen(t *testing.T) {
	ecs, s := newAnimWorld()
	id, sprite := addAnimatedDuck(ecs, component.FlyingRight)
	sprite.FrameIndex = 2
	ecs.Ducks[id].Behavior = component.Dying
	ecs.Ducks[id].Dead = true

	s.Update(config.AnimationInterval)

	if sprite.FrameIndex != 2 {
		t.Errorf("Expected dead duck frame untouched, got %d", sprite.FrameIndex)
	}
}

func TestDecorationCyclesAllFrames(t *testing.T) {
	ecs, s := newAnimWorld()
	id := ecs.NewEntity()
	sprite := &component.Sprite{DefID: config.DogDefID}
	ecs.Positions[id] = &component.Position{X: config.DogX, Y: config.DogY}
	ecs.Sprites[id] = sprite
	ecs.AnimTimers[id] = component.NewTimer(config.AnimationInterval, true)

	// У собаки 4 кадра: 1, 2, 3, 0.
	want := []int{1, 2, 3, 0}
	for i, w := range want {
		s.Update(config.AnimationInterval)
		if sprite.FrameIndex != w {
			t.Errorf("Completion %d: expected frame %d, got %d", i+1, w, sprite.FrameIndex)
		}
	}
}
