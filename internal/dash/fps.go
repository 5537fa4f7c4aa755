package dash

import "time"

// FPSCounter measures the achieved redraw rate. Frames are counted until at
// least one second has passed, then the rate is published and the window
// restarts. Before the first window closes the rate reads zero.
type FPSCounter struct {
	windowStart time.Time
	frames      int
	fps         float64
}

// NewFPSCounter returns a counter with no completed window yet.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{}
}

// Frame records one rendered frame at the given time.
func (f *FPSCounter) Frame(now time.Time) {
	if f.windowStart.IsZero() {
		f.windowStart = now
	}
	f.frames++
	elapsed := now.Sub(f.windowStart)
	if elapsed >= time.Second {
		f.fps = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.windowStart = now
	}
}

// FPS returns the rate measured over the last completed window.
func (f *FPSCounter) FPS() float64 {
	return f.fps
}
