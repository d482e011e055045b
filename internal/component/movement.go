// internal/component/movement.go
package component

// Position — позиция в мировых координатах.
// Начало координат — центр игрового поля, ось Y направлена вверх.
type Position struct {
	X, Y float64
}
