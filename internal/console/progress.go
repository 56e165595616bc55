package console

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrZeroMaxValue is returned when a progress waiter is constructed with a
// zero maximum, which would make the displayed ratio undefined
var ErrZeroMaxValue = errors.New("progress waiter: max value must not be zero")

// Number covers the numeric types a progress waiter can count in
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// barFill is the glyph used for filled progress bar cells
const barFill = "■"

// ProgressWaiter renders a percentage and a fixed-width progress bar on one
// terminal line. Like SpinWaiter, it holds the console lock from
// construction until Release and owns the line for its whole lifetime.
type ProgressWaiter[T Number] struct {
	console        *Console
	maxValue       T
	lastWidth      int
	clearOnRelease bool
}

// NewProgressWaiter acquires the console lock (blocking) for the lifetime of
// the returned waiter. A zero maxValue is rejected with ErrZeroMaxValue
// before the lock is taken, so the console stays usable after a failed
// construction.
func NewProgressWaiter[T Number](c *Console, maxValue T, clearOnRelease bool) (*ProgressWaiter[T], error) {
	if maxValue == 0 {
		return nil, ErrZeroMaxValue
	}
	c.mu.Lock()
	return &ProgressWaiter[T]{
		console:        c,
		maxValue:       maxValue,
		clearOnRelease: clearOnRelease,
	}, nil
}

// Update repaints the line for the given progress value. The value is
// clamped to [0, max], so the displayed percentage never exceeds 100 and the
// filled cell count never exceeds the bar width.
func (p *ProgressWaiter[T]) Update(current T) {
	c := p.console

	if current > p.maxValue {
		current = p.maxValue
	}
	if current < 0 {
		current = 0
	}

	fraction := float64(current) / float64(p.maxValue)
	percent := int(fraction * 100)
	filled := int(fraction * float64(c.barWidth))

	line := fmt.Sprintf("%*s%d%%[%s%*s]",
		int(c.padding.Load()), "",
		percent,
		strings.Repeat(barFill, filled),
		c.barWidth-filled, "")

	c.writef("\r%s", line)
	// display cells, not bytes: the fill glyph is multi-byte
	p.lastWidth = utf8.RuneCountInString(line)
}

// Release ends the rendering and releases the console lock. With
// clear-on-release it blanks exactly the width last drawn and returns the
// cursor to column start; otherwise it emits a trailing newline.
func (p *ProgressWaiter[T]) Release() {
	c := p.console
	if p.clearOnRelease {
		c.writef("\r%*s\r", p.lastWidth, "")
	} else {
		c.writef("\n")
	}
	c.mu.Unlock()
}
