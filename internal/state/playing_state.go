// internal/state/playing_state.go
package state

import (
	game "go-duck-hunt/internal/app"
	"go-duck-hunt/internal/config"
	"go-duck-hunt/internal/defs"
	"go-duck-hunt/internal/ui"
	"go-duck-hunt/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PlayingState)(nil)

// PlayingState — собственно охота. Владеет игровой логикой, фоном и HUD.
type PlayingState struct {
	sm          *StateMachine
	game        *game.Game
	playfield   *render.PlayfieldRenderer
	counter     *ui.DuckCounter
	pauseButton *ui.PauseButton
}

func NewPlayingState(sm *StateMachine, settings *config.Settings) *PlayingState {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	defs.EnsureLoaded(settings.ActorDefsPath)

	gameLogic := game.NewGame(settings)

	playfield := render.NewPlayfieldRenderer(config.ScreenWidth, config.ScreenHeight, &render.PlayfieldColors{
		SkyColor:       config.BackgroundColor,
		GroundColor:    config.GroundColor,
		GrassColor:     config.GrassColor,
		TreeTrunkColor: config.TreeTrunkColor,
		TreeCrownColor: config.TreeCrownColor,
	})

	return &PlayingState{
		sm:        sm,
		game:      gameLogic,
		playfield: playfield,
		counter: ui.NewDuckCounter(
			config.CounterOffsetX,
			config.CounterOffsetY,
			playfield.FontFace(),
			config.TextDarkColor,
		),
		pauseButton: ui.NewPauseButton(
			config.PauseButtonX,
			config.PauseButtonY,
			config.PauseButtonSize,
			config.PauseIconColor,
		),
	}
}

func (s *PlayingState) Enter() {}

func (s *PlayingState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.pause()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.pauseButton.IsClicked(float64(mx), float64(my)) {
			s.pause()
			return
		}
		// Курсор уже в логических координатах поля: Layout фиксирует 256×240.
		s.game.QueueShot(float64(mx), float64(my))
	}

	s.game.Update(deltaTime)
}

func (s *PlayingState) pause() {
	s.pauseButton.TogglePause()
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *PlayingState) Draw(screen *ebiten.Image) {
	s.playfield.Draw(screen)
	s.game.RenderSystem.Draw(screen)

	hit, _ := s.game.Stats()
	s.counter.Draw(screen, hit, s.game.DuckCount())
	s.pauseButton.Draw(screen)
}

func (s *PlayingState) Exit() {}
