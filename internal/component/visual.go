// internal/component/visual.go
package component

// Sprite — текущее визуальное состояние сущности: кадр атласа и зеркалирование.
type Sprite struct {
	DefID      string
	FrameIndex int
	FlipX      bool
}
