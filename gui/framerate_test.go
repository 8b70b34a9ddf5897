package gui

import "testing"

func TestFrameTimerEmpty(t *testing.T) {
	var timer FrameTimer
	if timer.Framerate() != 0 || timer.FrameTime() != 0 {
		t.Error("empty timer should report zero")
	}
}

func TestFrameTimerAverage(t *testing.T) {
	var timer FrameTimer
	timer.Add(0.01)
	timer.Add(0.03)

	if got := timer.Framerate(); got < 49.9 || got > 50.1 {
		t.Errorf("Framerate = %v, want 50", got)
	}
	if got := timer.FrameTime(); got < 19.9 || got > 20.1 {
		t.Errorf("FrameTime = %v ms, want 20", got)
	}
}

func TestFrameTimerIgnoresNonPositive(t *testing.T) {
	var timer FrameTimer
	timer.Add(0.02)
	timer.Add(0)
	timer.Add(-1)

	if timer.count != 1 {
		t.Errorf("count = %d, want 1", timer.count)
	}
}

func TestFrameTimerRollsOver(t *testing.T) {
	var timer FrameTimer
	for range framerateWindow {
		timer.Add(0.1)
	}
	for range framerateWindow {
		timer.Add(0.01)
	}

	if timer.count != framerateWindow {
		t.Errorf("count = %d, want %d", timer.count, framerateWindow)
	}
	if got := timer.Framerate(); got < 99 || got > 101 {
		t.Errorf("Framerate after window rolled = %v, want 100", got)
	}
}
