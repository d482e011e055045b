// internal/app/game.go
package app

import (
	"log"

	"go-duck-hunt/internal/component"
	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/defs"
	"go-duck-hunt/internal/entity"
	"go-duck-hunt/internal/event"
	"go-duck-hunt/internal/system"
)

// shot — один необработанный клик в экранных координатах.
// Живёт не дольше одного кадра: очередь вычерпывается в Update.
type shot struct {
	screenX, screenY float64
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	AnimationSystem *system.AnimationSystem
	ShootingSystem  *system.ShootingSystem
	DeathSystem     *system.DeathSystem
	RenderSystem    *system.RenderSystem

	settings     *config.Settings
	pendingShots []shot

	ducksShot   int
	ducksFallen int
}

// NewGame initializes a new game instance.
func NewGame(settings *config.Settings) *Game {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if len(defs.ActorLibrary) == 0 {
		defs.UseDefaults()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		SpawnSystem:     system.NewSpawnSystem(ecs, eventDispatcher, settings.SpawnInterval),
		MovementSystem:  system.NewMovementSystem(ecs),
		AnimationSystem: system.NewAnimationSystem(ecs),
		ShootingSystem:  system.NewShootingSystem(ecs, eventDispatcher),
		DeathSystem:     system.NewDeathSystem(ecs, eventDispatcher),
		RenderSystem:    system.NewRenderSystem(ecs, settings.ShowHitboxes),
		settings:        settings,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.DuckSpawned, listener)
	eventDispatcher.Subscribe(event.DuckHit, listener)
	eventDispatcher.Subscribe(event.DuckFallen, listener)

	g.seedWorld()
	return g
}

// seedWorld заселяет стартовый мир: собаку и первую утку.
func (g *Game) seedWorld() {
	dogID := g.ECS.NewEntity()
	g.ECS.Positions[dogID] = &component.Position{X: config.DogX, Y: config.DogY}
	g.ECS.Sprites[dogID] = &component.Sprite{DefID: config.DogDefID}
	g.ECS.AnimTimers[dogID] = component.NewTimer(config.AnimationInterval, true)

	duckID := g.ECS.NewEntity()
	g.ECS.Positions[duckID] = &component.Position{X: config.InitialDuckX, Y: config.InitialDuckY}
	g.ECS.Ducks[duckID] = &component.Duck{
		DefID:    config.DuckDefID,
		Behavior: component.FlyingLeft,
		Speed:    config.InitialDuckSpeed,
	}
	g.ECS.Sprites[duckID] = &component.Sprite{DefID: config.DuckDefID}
	g.ECS.AnimTimers[duckID] = component.NewTimer(config.AnimationInterval, true)
}

// QueueShot буферизует клик до стадии стрельбы текущего кадра.
// Координаты — экранные, в логическом разрешении поля.
func (g *Game) QueueShot(screenX, screenY float64) {
	g.pendingShots = append(g.pendingShots, shot{screenX: screenX, screenY: screenY})
}

// Update прогоняет один кадр: спавн → движение → анимация → выстрелы → смерть.
func (g *Game) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.ECS.GameTime += deltaTime

	g.SpawnSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.AnimationSystem.Update(deltaTime)

	for _, sh := range g.pendingShots {
		wx, wy := system.ScreenToWorld(sh.screenX, sh.screenY)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.ShotFired,
			Data: event.ShotFiredData{WorldX: wx, WorldY: wy},
		})
		g.ShootingSystem.Resolve(wx, wy)
	}
	g.pendingShots = g.pendingShots[:0]

	g.DeathSystem.Update(deltaTime)
}

// DuckCount возвращает число живых уток в мире.
func (g *Game) DuckCount() int {
	return len(g.ECS.Ducks)
}

// Stats — счётчики для HUD: попадания и долетевшие до земли утки.
func (g *Game) Stats() (hit, fallen int) {
	return g.ducksShot, g.ducksFallen
}

// GameEventListener реагирует на игровые события.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.DuckSpawned:
		if data, ok := e.Data.(event.DuckSpawnedData); ok {
			log.Printf("duck %d spawned at (%.1f, %.1f), speed %.1f", data.ID, data.X, data.Y, data.Speed)
		}
	case event.DuckHit:
		l.game.ducksShot++
	case event.DuckFallen:
		l.game.ducksFallen++
	}
}
