// internal/config/config.go
package config

import "image/color"

const (
	// Логическое разрешение NES — независимо от масштаба окна.
	ScreenWidth  = 256
	ScreenHeight = 240
	WindowScale  = 2

	MaxDeltaTime = 0.06

	// Спавн уток
	SpawnInterval   = 5.0
	SpawnHeight     = -40.0
	SpawnAmplitudeX = 120.0
	SpeedBase       = 20.0
	SpeedAmplitude  = 80.0

	// Полёт и гибель
	FlightBoundX = 120.0
	FallSpeed    = 80.0
	DespawnY     = -240.0

	AnimationInterval = 0.5

	// Начальная утка из setup-фазы
	InitialDuckX     = 40.0
	InitialDuckY     = 40.0
	InitialDuckSpeed = 20.0

	// Собака у левого края лужайки
	DogX = -60.0
	DogY = -97.0

	DuckDefID = "DUCK"
	DogDefID  = "DOG"

	PauseButtonX    = 240.0
	PauseButtonY    = 8.0
	PauseButtonSize = 10.0

	CounterOffsetX = 6
	CounterOffsetY = 14
)

var (
	// Цвет неба Duck Hunt — #40C0FF
	BackgroundColor = color.RGBA{0x40, 0xC0, 0xFF, 0xFF}
	GroundColor     = color.RGBA{0xA8, 0x60, 0x28, 0xFF}
	GrassColor      = color.RGBA{0x30, 0x98, 0x30, 0xFF}
	TreeTrunkColor  = color.RGBA{0x78, 0x48, 0x18, 0xFF}
	TreeCrownColor  = color.RGBA{0x20, 0x80, 0x20, 0xFF}
	TextLightColor  = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	TextDarkColor   = color.RGBA{0x14, 0x14, 0x1E, 0xFF}
	HitboxColor     = color.RGBA{0xFF, 0x00, 0x00, 0x80}
	PauseIconColor  = color.RGBA{0xF0, 0xF0, 0xF0, 0xDC}
	OverlayColor    = color.RGBA{0x00, 0x00, 0x00, 0x90}
)
