package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/isseis/go-term-logger/internal/common"
)

func TestSpinWaiter_ThrottlesRedraws(t *testing.T) {
	sink := newTestSink(t, ColorModeNever)

	w := sink.console.NewSpinWaiter(false)

	// inside the throttle window: both calls are no-ops
	w.Update()
	sink.clock.Advance(50 * time.Millisecond)
	w.Update()
	assert.Empty(t, sink.buf.String(), "updates within the throttle window must not redraw")

	// window elapsed: exactly one redraw
	sink.clock.Advance(50 * time.Millisecond)
	w.Update()
	assert.Equal(t, "|\r", sink.buf.String())

	// immediately again: throttled
	w.Update()
	assert.Equal(t, "|\r", sink.buf.String())

	w.Release()
}

func TestSpinWaiter_CyclesThroughAllFrames(t *testing.T) {
	sink := newTestSink(t, ColorModeNever)

	w := sink.console.NewSpinWaiter(false)
	for i := 0; i < 5; i++ {
		sink.clock.Advance(DefaultSpinnerInterval)
		w.Update()
	}
	w.Release()

	// advance-then-draw from index 0: |, /, -, \, then back to |
	assert.Equal(t, "|\r/\r-\r\\\r|\r\n", sink.buf.String())
}

func TestSpinWaiter_ReleaseEndsLine(t *testing.T) {
	t.Run("default leaves the line with a newline", func(t *testing.T) {
		sink := newTestSink(t, ColorModeNever)
		w := sink.console.NewSpinWaiter(false)
		w.Release()
		assert.Equal(t, "\n", sink.buf.String())
	})

	t.Run("clear-on-release returns to column start", func(t *testing.T) {
		sink := newTestSink(t, ColorModeNever)
		w := sink.console.NewSpinWaiter(true)
		w.Release()
		assert.Equal(t, "\r", sink.buf.String())
	})
}

func TestSpinWaiter_HoldsConsoleForLifetime(t *testing.T) {
	sink := newTestSink(t, ColorModeNever)

	w := sink.console.NewSpinWaiter(false)

	printed := make(chan struct{})
	go func() {
		sink.console.Printf("queued\n")
		close(printed)
	}()

	select {
	case <-printed:
		t.Fatal("print completed while the waiter held the console")
	case <-time.After(20 * time.Millisecond):
	}

	w.Release()

	select {
	case <-printed:
	case <-time.After(time.Second):
		t.Fatal("print did not complete after the waiter released the console")
	}

	assert.Equal(t, "\nqueued\n", sink.buf.String())
}

func TestSpinWaiter_IntervalOverride(t *testing.T) {
	var buf bytes.Buffer
	clock := common.NewFakeClock(time.Unix(0, 0))
	c := New(Options{
		Writer:          &buf,
		Mode:            ColorModeNever,
		Clock:           clock,
		SpinnerInterval: 10 * time.Millisecond,
	})

	w := c.NewSpinWaiter(true)
	clock.Advance(10 * time.Millisecond)
	w.Update()
	w.Release()

	assert.Equal(t, "|\r\r", buf.String())
}
