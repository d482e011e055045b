// internal/event/event_test.go
package event

import "testing"

type recordingListener struct {
	events []Event
}

func (l *recordingListener) OnEvent(e Event) {
	l.events = append(l.events, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &recordingListener{}
	b := &recordingListener{}
	d.Subscribe(DuckHit, a)
	d.Subscribe(DuckHit, b)
	d.Subscribe(DuckFallen, a)

	d.Dispatch(Event{Type: DuckHit, Data: 7})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("Expected both listeners to get 1 event, got %d and %d", len(a.events), len(b.events))
	}
	if a.events[0].Data != 7 {
		t.Errorf("Expected payload 7, got %v", a.events[0].Data)
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recordingListener{}
	d.Subscribe(DuckHit, a)
	d.Unsubscribe(DuckHit, a)

	d.Dispatch(Event{Type: DuckHit})

	if len(a.events) != 0 {
		t.Errorf("Expected no events after unsubscribe, got %d", len(a.events))
	}
}

type selfRemovingListener struct {
	d     *Dispatcher
	calls int
}

func (l *selfRemovingListener) OnEvent(e Event) {
	l.calls++
	l.d.Unsubscribe(e.Type, l)
}

func TestDispatcherListenerMayUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	l := &selfRemovingListener{d: d}
	d.Subscribe(DuckRemoved, l)

	d.Dispatch(Event{Type: DuckRemoved})
	d.Dispatch(Event{Type: DuckRemoved})

	if l.calls != 1 {
		t.Errorf("Expected exactly 1 call, got %d", l.calls)
	}
}
