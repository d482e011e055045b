// internal/entity/ecs.go
package entity

import (
	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/types"
)

// ECS — хранилище компонентов на картах, по карте на тип компонента.
type ECS struct {
	GameTime   float64 // суммарное игровое время с начала партии, секунды
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Ducks      map[types.EntityID]*component.Duck
	Sprites    map[types.EntityID]*component.Sprite
	AnimTimers map[types.EntityID]*component.Timer
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Ducks:      make(map[types.EntityID]*component.Duck),
		Sprites:    make(map[types.EntityID]*component.Sprite),
		AnimTimers: make(map[types.EntityID]*component.Timer),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Ducks, id)
	delete(ecs.Sprites, id)
	delete(ecs.AnimTimers, id)
}
