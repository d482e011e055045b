// internal/defs/actors.go
package defs

// Visuals describes how an actor is drawn by the procedural renderer.
// Colours are hex strings ("#RRGGBB") parsed by pkg/render.
type Visuals struct {
	Body   string `json:"body"`
	Accent string `json:"accent"`
}

// ActorDefinition holds all the static data for a sprite actor.
// Frame indices follow the atlas layout: ducks carry a 3-frame
// flight cycle, a splat frame and a terminal falling frame.
type ActorDefinition struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TileWidth     float64 `json:"tile_width"`
	TileHeight    float64 `json:"tile_height"`
	FrameCount    int     `json:"frame_count"`
	FlyFrames     int     `json:"fly_frames"`      // кадры цикла полёта, 0 для декораций
	SplatFrame    int     `json:"splat_frame"`     // кадр «шлепка» при попадании
	FinalFrame    int     `json:"final_frame"`     // последний кадр падения
	HitHalfExtent float64 `json:"hit_half_extent"` // полуразмер хитбокса, 0 — в утку нельзя попасть
	Visuals       Visuals `json:"visuals"`
}

// Defaults возвращает встроенную библиотеку — те же актёры, что и в
// assets/defs/actors.json. Используется, когда файла нет рядом с бинарником.
func Defaults() []ActorDefinition {
	return []ActorDefinition{
		{
			ID:            "DUCK",
			Name:          "Duck",
			TileWidth:     32,
			TileHeight:    32,
			FrameCount:    5,
			FlyFrames:     3,
			SplatFrame:    3,
			FinalFrame:    4,
			HitHalfExtent: 32,
			Visuals:       Visuals{Body: "#202020", Accent: "#C03018"},
		},
		{
			ID:            "DUCK_SMALL",
			Name:          "Small duck",
			TileWidth:     16,
			TileHeight:    16,
			FrameCount:    5,
			FlyFrames:     3,
			SplatFrame:    3,
			FinalFrame:    4,
			HitHalfExtent: 16,
			Visuals:       Visuals{Body: "#383838", Accent: "#C03018"},
		},
		{
			ID:         "DOG",
			Name:       "Dog",
			TileWidth:  60,
			TileHeight: 46,
			FrameCount: 4,
			Visuals:    Visuals{Body: "#B07830", Accent: "#F0E0C0"},
		},
	}
}
