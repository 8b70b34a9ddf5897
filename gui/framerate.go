package gui

// framerateWindow is the number of frames averaged by FrameTimer.
const framerateWindow = 120

// FrameTimer keeps a rolling average of frame durations.
type FrameTimer struct {
	deltas [framerateWindow]float32
	next   int
	count  int
	sum    float32
}

// Add records the duration of one frame in seconds. Non-positive deltas
// are ignored.
func (t *FrameTimer) Add(dt float32) {
	if dt <= 0 {
		return
	}
	t.sum -= t.deltas[t.next]
	t.deltas[t.next] = dt
	t.sum += dt
	t.next = (t.next + 1) % framerateWindow
	if t.count < framerateWindow {
		t.count++
	}
}

// Framerate returns the average frames per second over the window, or 0
// before any frame is recorded.
func (t *FrameTimer) Framerate() float32 {
	if t.count == 0 || t.sum <= 0 {
		return 0
	}
	return float32(t.count) / t.sum
}

// FrameTime returns the average frame duration in milliseconds.
func (t *FrameTimer) FrameTime() float32 {
	if fps := t.Framerate(); fps > 0 {
		return 1000 / fps
	}
	return 0
}
