package console

import "time"

// spinnerFrames is the four-symbol animation cycle. The frame index is
// advanced before drawing, so the first rendered symbol is the second entry.
var spinnerFrames = [4]byte{'\\', '|', '/', '-'}

// SpinWaiter renders a rotating single-character animation on one terminal
// line to indicate indeterminate progress. It holds the console lock from
// construction until Release, owning the line for its whole lifetime: all
// other prints on the same console block until it is released. Constructing
// a second waiter on the same console from the same goroutine deadlocks;
// this is an accepted limitation, not a guarded error.
type SpinWaiter struct {
	console        *Console
	frame          int
	lastUpdate     time.Time
	clearOnRelease bool
}

// NewSpinWaiter acquires the console lock (blocking) and records the current
// time. Set clearOnRelease to return the cursor to column start instead of
// emitting a newline when the waiter is released.
func (c *Console) NewSpinWaiter(clearOnRelease bool) *SpinWaiter {
	c.mu.Lock()
	return &SpinWaiter{
		console:        c,
		lastUpdate:     c.clock.Now(),
		clearOnRelease: clearOnRelease,
	}
}

// Update redraws the animation frame in place. It is a no-op until the
// redraw interval has elapsed since the last draw; otherwise it advances the
// frame cyclically and overwrites the line with padding + symbol + carriage
// return.
func (w *SpinWaiter) Update() {
	c := w.console

	if c.clock.Now().Sub(w.lastUpdate) < c.spinnerInterval {
		return
	}

	w.frame = (w.frame + 1) % len(spinnerFrames)
	c.writef("%*s%c\r", int(c.padding.Load()), "", spinnerFrames[w.frame])
	w.lastUpdate = c.clock.Now()
}

// Release ends the animation and releases the console lock. It writes a
// carriage return (clear-on-release) or a newline so the next unrelated
// print starts on a clean line.
func (w *SpinWaiter) Release() {
	c := w.console
	if w.clearOnRelease {
		c.writef("\r")
	} else {
		c.writef("\n")
	}
	c.mu.Unlock()
}
