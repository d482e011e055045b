// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-duck-hunt/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

// PauseState рисует замершую игру под полупрозрачной плашкой.
type PauseState struct {
	sm            *StateMachine
	previousState *PlayingState
}

func NewPauseState(sm *StateMachine, prevState *PlayingState) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.previousState.pauseButton.SetPaused(false)
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	text.Draw(screen, "PAUSED", basicfont.Face7x13, config.ScreenWidth/2-21, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
