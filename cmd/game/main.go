// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true — начинать сразу с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings("settings.yaml")
	if err != nil {
		log.Fatal(err)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewPlayingState(sm, settings))
	} else {
		sm.SetState(state.NewMenuState(sm, settings))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth*settings.WindowScale, config.ScreenHeight*settings.WindowScale)
	ebiten.SetWindowTitle("Duck Hunt")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
