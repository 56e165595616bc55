// Package console provides serialized, colorized console output with a
// shared padding level and scope-bound progress widgets (spinner and
// percentage bar) that repaint a single terminal line in place.
//
// A Console is an explicitly constructed sink rather than a process-wide
// singleton, so tests can run isolated instances; Default returns a shared
// instance bound to standard output for ordinary use.
package console

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"

	"github.com/isseis/go-term-logger/internal/common"
	"github.com/isseis/go-term-logger/internal/terminal"
)

// Defaults for widget rendering
const (
	// DefaultSpinnerInterval is the minimum delay between spinner redraws
	DefaultSpinnerInterval = 100 * time.Millisecond

	// DefaultBarWidth is the progress bar width in cells
	DefaultBarWidth = 10
)

// ColorMode selects how a Console decides whether to emit color escapes
type ColorMode int

// Color modes
const (
	// ColorModeAuto consults terminal capabilities (TTY, TERM, NO_COLOR, ...)
	ColorModeAuto ColorMode = iota

	// ColorModeAlways emits color escapes unconditionally
	ColorModeAlways

	// ColorModeNever emits no color escapes at all
	ColorModeNever
)

// Options configures a Console. The zero value is usable: standard output,
// automatic color detection, system clock, and the default abort hook.
type Options struct {
	// Writer is the output sink (default: os.Stdout)
	Writer io.Writer

	// Mode controls color escape emission
	Mode ColorMode

	// Capabilities is consulted in ColorModeAuto; nil means detect from the
	// process environment
	Capabilities terminal.Capabilities

	// Clock is used for spinner redraw throttling (default: system clock)
	Clock common.Clock

	// Abort is invoked by Errorf and on sink write failure. The default
	// raises SIGTRAP and then exits; tests inject a recording hook.
	Abort func()

	// SpinnerInterval overrides DefaultSpinnerInterval when positive
	SpinnerInterval time.Duration

	// BarWidth overrides DefaultBarWidth when positive
	BarWidth int

	// Padding is the initial padding level in spaces
	Padding uint8
}

// Console serializes formatted output to a single sink. One mutex guards the
// sink; formatted prints hold it per call, while waiters hold it for their
// entire lifetime and own the current terminal line. The padding counter is
// a separate atomic, so padding changes are visible across goroutines
// independent of who currently holds the print lock.
type Console struct {
	mu              sync.Mutex
	padding         atomic.Uint32
	writer          io.Writer
	renderers       [colorCount]*color.Color
	clock           common.Clock
	abort           func()
	spinnerInterval time.Duration
	barWidth        int
}

// New creates a Console from the given options
func New(opts Options) *Console {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Clock == nil {
		opts.Clock = common.NewSystemClock()
	}
	if opts.Abort == nil {
		opts.Abort = defaultAbort
	}
	if opts.SpinnerInterval <= 0 {
		opts.SpinnerInterval = DefaultSpinnerInterval
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = DefaultBarWidth
	}

	enabled := false
	switch opts.Mode {
	case ColorModeAlways:
		enabled = true
	case ColorModeNever:
		enabled = false
	default:
		caps := opts.Capabilities
		if caps == nil {
			caps = terminal.NewCapabilities(terminal.Options{})
		}
		enabled = caps.SupportsColor()
	}

	c := &Console{
		writer:          opts.Writer,
		clock:           opts.Clock,
		abort:           opts.Abort,
		spinnerInterval: opts.SpinnerInterval,
		barWidth:        opts.BarWidth,
	}
	c.padding.Store(uint32(opts.Padding))

	for clr := Color(0); clr < colorCount; clr++ {
		renderer := color.New(colorAttributes[clr]...)
		if enabled {
			renderer.EnableColor()
		} else {
			renderer.DisableColor()
		}
		c.renderers[clr] = renderer
	}
	return c
}

var defaultConsole = sync.OnceValue(func() *Console {
	return New(Options{})
})

// Default returns the shared Console bound to standard output
func Default() *Console {
	return defaultConsole()
}

// Padding returns the current padding level
func (c *Console) Padding() uint8 {
	return uint8(c.padding.Load())
}

// Printf writes padding spaces followed by the formatted text in the neutral
// color. It returns the number of characters written, including padding and
// excluding color escape bytes.
func (c *Console) Printf(format string, args ...any) int {
	return c.Cprintf(Gray, format, args...)
}

// Cprintf writes padding spaces followed by the formatted text in the given
// color, then resets the sink to the neutral color. The whole operation is
// serialized against other prints and waiters; no interleaving of two
// concurrent prints is observable. It returns the number of characters
// written, including padding and excluding color escape bytes.
func (c *Console) Cprintf(clr Color, format string, args ...any) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.printPadded(clr, format, args...)
}

// Errorf writes the formatted text in the alert color, then invokes the
// abort hook. This is the log-and-halt primitive: logging an error is meant
// to stop execution for inspection, not to be a recoverable reporting
// channel. With the default hook it does not return.
func (c *Console) Errorf(format string, args ...any) {
	c.Cprintf(Red, format, args...)
	c.abort()
}

// printPadded renders padding + text in clr. Caller must hold c.mu. The
// returned count covers the padded text only; the color escapes around it
// are out-of-band, matching a sink that sets color via a console API.
func (c *Console) printPadded(clr Color, format string, args ...any) int {
	if clr >= colorCount {
		clr = Gray
	}

	padded := fmt.Sprintf("%*s"+format,
		append([]any{int(c.padding.Load()), ""}, args...)...)
	if _, err := io.WriteString(c.writer, c.renderers[clr].Sprint(padded)); err != nil {
		c.abort()
	}
	return len(padded)
}

// writef writes raw uncolored text. Caller must hold c.mu.
func (c *Console) writef(format string, args ...any) int {
	n, err := fmt.Fprintf(c.writer, format, args...)
	if err != nil {
		c.abort()
	}
	return n
}

// defaultAbort mirrors a debugger break: SIGTRAP hands control to an
// attached debugger, and the exit covers the undebugged case.
func defaultAbort() {
	runtime.Breakpoint()
	os.Exit(1)
}
