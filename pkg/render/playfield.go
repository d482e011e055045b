// pkg/render/playfield.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// PlayfieldRenderer рисует статичный фон: небо, лужайку и дерево.
// Фон рендерится один раз в кэшированное изображение, в кадре — только Blit.
type PlayfieldRenderer struct {
	screenWidth  int
	screenHeight int
	colors       *PlayfieldColors
	fontFace     font.Face
	fieldImage   *ebiten.Image // предрендеренное поле
}

func NewPlayfieldRenderer(screenWidth, screenHeight int, colors *PlayfieldColors) *PlayfieldRenderer {
	r := &PlayfieldRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		// Пиксельного TTF в ассетах нет, basicfont для HUD достаточно.
		fontFace: basicfont.Face7x13,
	}
	r.renderFieldImage()
	return r
}

// renderFieldImage собирает фон в кэш.
func (r *PlayfieldRenderer) renderFieldImage() {
	img := ebiten.NewImage(r.screenWidth, r.screenHeight)
	img.Fill(r.colors.SkyColor)

	w := float32(r.screenWidth)
	h := float32(r.screenHeight)

	// Земля и полоска травы в нижней шестой части поля.
	groundTop := h * 5 / 6
	vector.DrawFilledRect(img, 0, groundTop, w, h-groundTop, r.colors.GroundColor, false)
	vector.DrawFilledRect(img, 0, groundTop, w, 4, r.colors.GrassColor, false)

	// Дерево слева от лужайки.
	trunkX := w * 0.12
	vector.DrawFilledRect(img, trunkX-3, groundTop-46, 6, 46, r.colors.TreeTrunkColor, false)
	vector.DrawFilledCircle(img, trunkX, groundTop-56, 22, r.colors.TreeCrownColor, true)
	vector.DrawFilledCircle(img, trunkX-14, groundTop-44, 14, r.colors.TreeCrownColor, true)
	vector.DrawFilledCircle(img, trunkX+14, groundTop-44, 14, DarkenColor(r.colors.TreeCrownColor), true)

	// Кусты травы по лужайке.
	for i := 0; i < 6; i++ {
		gx := w * float32(i*2+1) / 12
		vector.DrawFilledCircle(img, gx, groundTop+6, 5, r.colors.GrassColor, true)
	}

	r.fieldImage = img
}

// Draw выводит кэшированный фон.
func (r *PlayfieldRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.fieldImage, nil)
}

// FontFace отдаёт шрифт для HUD-текста.
func (r *PlayfieldRenderer) FontFace() font.Face {
	return r.fontFace
}
