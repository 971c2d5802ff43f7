package motion

import "math"

// timerEpsilon absorbs the error accumulated by summing a fixed dt, so six
// steps of 1/60s count as having reached a 0.1s ceiling.
const timerEpsilon = 1e-9

// Window is a count-up timer compared against its own ceiling. A window is
// open while its value is below the ceiling. A window that was never reset,
// or was consumed, reports +Inf and stays closed whatever the ceiling is.
type Window struct {
	value   float64
	ceiling float64
}

// NewWindow returns a closed window with the given ceiling.
func NewWindow(ceiling float64) Window {
	return Window{value: math.Inf(1), ceiling: ceiling}
}

// Tick advances an open window by dt. Closed windows do not move.
func (w *Window) Tick(dt float64) {
	if w.Open() {
		w.value += dt
	}
}

// Reset reopens the window from zero.
func (w *Window) Reset() {
	w.value = 0
}

// Consume pushes the window past its ceiling until the next Reset.
func (w *Window) Consume() {
	w.value = math.Inf(1)
}

// Open reports whether the value is still below the ceiling.
func (w Window) Open() bool {
	return w.value < w.ceiling-timerEpsilon
}

// Expired is the negation of Open.
func (w Window) Expired() bool {
	return !w.Open()
}

// Within reports whether the value has not passed the ceiling yet. Unlike
// Open it includes the step that lands exactly on the ceiling.
func (w Window) Within() bool {
	return w.value <= w.ceiling+timerEpsilon
}

// Elapsed returns the time since the last Reset.
func (w Window) Elapsed() float64 {
	return w.value
}

// Ceiling returns the window length.
func (w Window) Ceiling() float64 {
	return w.ceiling
}

// SetCeiling changes the window length without touching the elapsed value.
func (w *Window) SetCeiling(ceiling float64) {
	w.ceiling = ceiling
}
