// internal/component/timer.go
package component

// Timer — многоразовый таймер обратного отсчёта. В повторяющемся режиме
// излишек сверх длительности переносится в следующий цикл, так что
// завершения происходят ровно раз в Duration накопленного времени.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool

	finished      bool
	justCompleted bool
}

// NewTimer создаёт таймер с заданной длительностью в секундах.
func NewTimer(duration float64, repeating bool) *Timer {
	return &Timer{Duration: duration, Repeating: repeating}
}

// Tick продвигает таймер на elapsed секунд. Отрицательные значения игнорируются.
func (t *Timer) Tick(elapsed float64) {
	t.justCompleted = false
	if elapsed < 0 || t.Duration <= 0 {
		return
	}
	if !t.Repeating && t.finished {
		return
	}

	t.Elapsed += elapsed
	if t.Elapsed < t.Duration {
		return
	}

	t.justCompleted = true
	if t.Repeating {
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
		}
	} else {
		t.Elapsed = t.Duration
		t.finished = true
	}
}

// JustCompleted сообщает, завершился ли таймер на последнем Tick.
// Флаг живёт ровно до следующего Tick.
func (t *Timer) JustCompleted() bool {
	return t.justCompleted
}

// Finished сообщает, отработал ли одноразовый таймер.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset обнуляет накопленное время, не меняя конфигурацию.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justCompleted = false
}
