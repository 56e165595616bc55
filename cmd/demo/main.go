// Package main provides a demonstration of the console logger: colored
// formatted prints, nested padding scopes, slog integration, and the spinner
// and progress waiters repainting a terminal line in place.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/isseis/go-term-logger/internal/config"
	"github.com/isseis/go-term-logger/internal/console"
	"github.com/isseis/go-term-logger/internal/logging"
	"github.com/isseis/go-term-logger/internal/terminal"
)

var (
	configPath     = flag.String("config", "", "path to optional TOML config file")
	forceColor     = flag.Bool("force-color", false, "emit color escapes regardless of environment")
	noColor        = flag.Bool("no-color", false, "never emit color escapes")
	interactive    = flag.Bool("interactive", false, "treat the environment as interactive")
	nonInteractive = flag.Bool("non-interactive", false, "treat the environment as non-interactive")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	spec := config.DefaultSpec()
	if *configPath != "" {
		loaded, err := config.NewLoader().LoadSpec(*configPath)
		if err != nil {
			return err
		}
		spec = loaded
	}

	sink := console.New(consoleOptions(spec))

	showPrints(sink)
	showPadding(sink)
	showLogging(sink)
	showSpinner(sink, spec.Spinner.ClearOnRelease)
	showProgress(sink, spec.Progress.ClearOnRelease)

	sink.Cprintf(console.Green, "done\n")
	return nil
}

// consoleOptions maps the config spec and command line flags onto console
// options. Flags take precedence over the config file.
func consoleOptions(spec *config.Spec) console.Options {
	mode := console.ColorModeAuto
	switch spec.Output.Color {
	case config.ColorModeAlways:
		mode = console.ColorModeAlways
	case config.ColorModeNever:
		mode = console.ColorModeNever
	}
	if *forceColor {
		mode = console.ColorModeAlways
	}
	if *noColor {
		mode = console.ColorModeNever
	}

	return console.Options{
		Mode: mode,
		Capabilities: terminal.NewCapabilities(terminal.Options{
			ForceInteractive:    *interactive,
			ForceNonInteractive: *nonInteractive,
		}),
		Padding:         uint8(spec.Output.Padding),
		SpinnerInterval: time.Duration(spec.Spinner.IntervalMS) * time.Millisecond,
		BarWidth:        spec.Progress.BarWidth,
	}
}

func showPrints(sink *console.Console) {
	sink.Printf("formatted prints:\n")
	sink.Cprintf(console.Green, "ok: %s\n", "all checks passed")
	sink.Cprintf(console.Yellow, "warn: %d items skipped\n", 3)
	sink.Cprintf(console.Cyan, "hint: run with -force-color to see colors in a pipe\n")
	sink.Cprintf(console.DarkGray, "trace: 12ms elapsed\n")
}

func showPadding(sink *console.Console) {
	sink.Printf("padding scopes:\n")
	outer := sink.ExtendPadding(2)
	defer outer.Release()

	sink.Printf("level one\n")
	func() {
		inner := sink.ExtendPadding(2)
		defer inner.Release()
		sink.Printf("level two\n")
	}()
	sink.Printf("back to level one\n")
}

func showLogging(sink *console.Console) {
	handler, err := logging.NewConsoleHandler(logging.ConsoleHandlerOptions{
		Level:   slog.LevelDebug,
		Console: sink,
	})
	if err != nil {
		sink.Errorf("building slog handler: %v", err)
		return
	}

	logger := slog.New(handler).WithGroup("demo")
	logger.Info("structured line", "attempt", 1)
	logger.Warn("something to look at", "retries", 2)
}

func showSpinner(sink *console.Console, clear bool) {
	sink.Printf("spinner:\n")
	waiter := sink.NewSpinWaiter(clear)
	defer waiter.Release()

	deadline := time.Now().Add(1200 * time.Millisecond)
	for time.Now().Before(deadline) {
		waiter.Update()
		time.Sleep(20 * time.Millisecond)
	}
}

func showProgress(sink *console.Console, clear bool) {
	sink.Printf("progress:\n")
	const steps = 40
	waiter, err := console.NewProgressWaiter(sink, steps, clear)
	if err != nil {
		sink.Errorf("building progress waiter: %v", err)
		return
	}
	defer waiter.Release()

	for i := 0; i <= steps; i++ {
		waiter.Update(i)
		time.Sleep(30 * time.Millisecond)
	}
}
