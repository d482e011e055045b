// internal/event/types.go
package event

import "go-duck-hunt/internal/types"

const (
	DuckSpawned EventType = "DuckSpawned" // Утка появилась
	DuckHit     EventType = "DuckHit"     // Выстрел попал в утку
	DuckFallen  EventType = "DuckFallen"  // Подстреленная утка упала за поле
	DuckRemoved EventType = "DuckRemoved" // Утка убрана из мира
	ShotFired   EventType = "ShotFired"   // Игрок выстрелил
)

// DuckSpawnedData — данные события DuckSpawned.
type DuckSpawnedData struct {
	ID    types.EntityID
	X, Y  float64
	Speed float64
}

// DuckHitData — данные события DuckHit.
type DuckHitData struct {
	ID           types.EntityID
	ShotX, ShotY float64 // мировые координаты выстрела
}

// ShotFiredData — данные события ShotFired.
type ShotFiredData struct {
	WorldX, WorldY float64
}
