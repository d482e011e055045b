// internal/component/timer_test.go
package component

import "testing"

func TestTimerRepeatingCompletesOncePerPeriod(t *testing.T) {
	timer := NewTimer(1.0, true)

	completions := 0
	// 24 тика по 0.125 — ровно 3 секунды без накопления ошибки float.
	for i := 0; i < 24; i++ {
		timer.Tick(0.125)
		if timer.JustCompleted() {
			completions++
		}
	}

	if completions != 3 {
		t.Errorf("Expected 3 completions over 3.0s, got %d", completions)
	}
}

func TestTimerJustCompletedLivesUntilNextTick(t *testing.T) {
	timer := NewTimer(0.5, true)

	timer.Tick(0.5)
	if !timer.JustCompleted() {
		t.Fatal("Expected JustCompleted after crossing the duration")
	}
	// Повторный запрос до следующего Tick — всё ещё true.
	if !timer.JustCompleted() {
		t.Error("Expected JustCompleted to hold until the next Tick")
	}

	timer.Tick(0.1)
	if timer.JustCompleted() {
		t.Error("Expected JustCompleted to clear on the next Tick")
	}
}

func TestTimerRepeatingCarriesExcess(t *testing.T) {
	timer := NewTimer(1.0, true)

	timer.Tick(1.3)
	if !timer.JustCompleted() {
		t.Fatal("Expected completion at 1.3s")
	}
	if timer.Elapsed < 0.299 || timer.Elapsed > 0.301 {
		t.Errorf("Expected excess 0.3 carried over, got %f", timer.Elapsed)
	}

	// Излишек учтён: следующее завершение через 0.7, а не через 1.0.
	timer.Tick(0.7)
	if !timer.JustCompleted() {
		t.Error("Expected completion 0.7s after the carried excess")
	}
}

func TestTimerOneShotStopsAfterCompletion(t *testing.T) {
	timer := NewTimer(1.0, false)

	timer.Tick(1.0)
	if !timer.JustCompleted() {
		t.Fatal("Expected one-shot completion at 1.0s")
	}
	if !timer.Finished() {
		t.Error("Expected Finished after one-shot completion")
	}

	timer.Tick(5.0)
	if timer.JustCompleted() {
		t.Error("Expected no further completions from a finished one-shot timer")
	}
}

func TestTimerResetKeepsConfiguration(t *testing.T) {
	timer := NewTimer(0.5, true)
	timer.Tick(0.5)
	timer.Reset()

	if timer.JustCompleted() {
		t.Error("Expected Reset to clear the completion flag")
	}
	if timer.Elapsed != 0 {
		t.Errorf("Expected Elapsed = 0 after Reset, got %f", timer.Elapsed)
	}
	if timer.Duration != 0.5 || !timer.Repeating {
		t.Error("Expected Reset to keep duration and mode")
	}

	// После сброса отсчёт идёт с нуля.
	timer.Tick(0.4)
	if timer.JustCompleted() {
		t.Error("Expected no completion 0.4s after Reset")
	}
	timer.Tick(0.1)
	if !timer.JustCompleted() {
		t.Error("Expected completion 0.5s after Reset")
	}
}

func TestTimerIgnoresNegativeElapsed(t *testing.T) {
	timer := NewTimer(1.0, true)
	timer.Tick(0.9)
	timer.Tick(-0.5)

	if timer.JustCompleted() {
		t.Error("Expected no completion from a negative tick")
	}
	if timer.Elapsed != 0.9 {
		t.Errorf("Expected Elapsed unchanged at 0.9, got %f", timer.Elapsed)
	}
}
