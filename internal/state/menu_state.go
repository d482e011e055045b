// internal/state/menu_state.go
package state

import (
	"go-duck-hunt/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*MenuState)(nil)

// MenuState — титульный экран. Клик или пробел начинают игру.
type MenuState struct {
	sm       *StateMachine
	settings *config.Settings
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, settings *config.Settings) *MenuState {
	return &MenuState{
		sm:       sm,
		settings: settings,
		fontFace: basicfont.Face7x13,
	}
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewPlayingState(s.sm, s.settings))
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "DUCK HUNT", s.fontFace, config.ScreenWidth/2-32, config.ScreenHeight/2-10, config.TextDarkColor)
	text.Draw(screen, "CLICK TO START", s.fontFace, config.ScreenWidth/2-49, config.ScreenHeight/2+10, config.TextLightColor)
}

func (s *MenuState) Exit() {}
