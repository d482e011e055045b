// internal/event/event.go
package event

// EventType — строковый тип события.
type EventType string

// Event несёт тип и произвольные данные события.
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик диспетчера.
type Listener interface {
	OnEvent(e Event)
}

// Dispatcher рассылает события подписчикам. Однопоточный,
// вызывается только из игрового цикла.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe добавляет подписчика на события указанного типа.
func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// Unsubscribe убирает подписчика. Отписка незарегистрированного — no-op.
func (d *Dispatcher) Unsubscribe(t EventType, l Listener) {
	ls := d.listeners[t]
	for i := range ls {
		if ls[i] == l {
			d.listeners[t] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch доставляет событие всем подписчикам его типа.
// Снимок списка позволяет подписчику отписаться прямо из OnEvent.
func (d *Dispatcher) Dispatch(e Event) {
	ls := d.listeners[e.Type]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]Listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.OnEvent(e)
	}
}
