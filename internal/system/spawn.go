// internal/system/spawn.go
package system

import (
	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/defs"
	"go-duck-hunt/internal/entity"
	"go-duck-hunt/internal/event"
	"go-duck-hunt/internal/types"
	"log"
	"math"
)

// SpawnSystem периодически выпускает новую утку. Позиция, направление и
// скорость — детерминированные функции игрового времени: синус даёт
// достаточно «случайный» разброс без генератора.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	timer           *component.Timer
	defID           string
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, interval float64) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		timer:           component.NewTimer(interval, true),
		defID:           config.DuckDefID,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.timer.Tick(deltaTime)
	if !s.timer.JustCompleted() {
		return
	}
	s.SpawnDuck()
}

// SpawnDuck создаёт утку по текущему игровому времени и возвращает её ID.
func (s *SpawnSystem) SpawnDuck() types.EntityID {
	def, ok := defs.ActorLibrary[s.defID]
	if !ok {
		log.Printf("SpawnSystem: actor definition not found for ID: %s", s.defID)
		return 0
	}

	phase := math.Sin(s.ecs.GameTime)

	// Значение ровно 1.0 на практике недостижимо, но ветка по умолчанию
	// должна быть полной: никаких паник на краях диапазона.
	behavior := component.FlyingLeft
	if phase < 0 {
		behavior = component.FlyingRight
	}

	speed := phase*phase*config.SpeedAmplitude + config.SpeedBase

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: phase * config.SpawnAmplitudeX,
		Y: config.SpawnHeight,
	}
	s.ecs.Ducks[id] = &component.Duck{
		DefID:    def.ID,
		Behavior: behavior,
		Speed:    speed,
	}
	s.ecs.Sprites[id] = &component.Sprite{DefID: def.ID}
	s.ecs.AnimTimers[id] = component.NewTimer(config.AnimationInterval, true)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DuckSpawned,
		Data: event.DuckSpawnedData{
			ID:    id,
			X:     phase * config.SpawnAmplitudeX,
			Y:     config.SpawnHeight,
			Speed: speed,
		},
	})
	return id
}
