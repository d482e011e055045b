// internal/component/duck.go
package component

// DuckBehavior — дискретное состояние поведения утки.
// Переходы монотонны: из Dying обратно в полёт утка не возвращается.
type DuckBehavior int

const (
	FlyingLeft DuckBehavior = iota
	FlyingRight
	Dying
)

func (b DuckBehavior) String() string {
	switch b {
	case FlyingLeft:
		return "FlyingLeft"
	case FlyingRight:
		return "FlyingRight"
	case Dying:
		return "Dying"
	default:
		return "Unknown"
	}
}

// Duck — компонент утки.
type Duck struct {
	DefID    string // ID из библиотеки определений актёров
	Behavior DuckBehavior
	Speed    float64 // пикселей в секунду, фиксируется при спавне
	Dead     bool    // выставляется, когда утка покинула игровое поле
}
