// pkg/render/color.go
package render

import "image/color"

// PlayfieldColors holds all the color definitions needed to render the static
// playfield background.
type PlayfieldColors struct {
	SkyColor       color.RGBA
	GroundColor    color.RGBA
	GrassColor     color.RGBA
	TreeTrunkColor color.RGBA
	TreeCrownColor color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ParseHexColor разбирает строку вида "#RRGGBB". При ошибке возвращает fallback.
func ParseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return fallback
		}
		out[i] = hi<<4 | lo
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 0xFF}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
