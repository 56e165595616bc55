// Package logging provides a log/slog handler that routes records through a
// console sink with per-level colors, so structured log lines share the
// console's serialization and padding with direct prints and widgets.
package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/isseis/go-term-logger/internal/console"
)

// Static errors for ConsoleHandler validation
var (
	ErrConsoleRequired = errors.New("ConsoleHandler: Console is required")
)

// ConsoleHandler is a slog handler that writes each record as one colored
// console line. Error-level records are colored, not fatal: the log-and-halt
// primitive is Console.Errorf, and a slog adapter must stay a reporting
// channel.
type ConsoleHandler struct {
	console *console.Console
	level   slog.Level
	attrs   []slog.Attr
	groups  []string
}

// ConsoleHandlerOptions configures the ConsoleHandler.
type ConsoleHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Console is the output sink
	Console *console.Console
}

// NewConsoleHandler creates a new ConsoleHandler with the given options.
// Returns an error if the console is missing.
func NewConsoleHandler(opts ConsoleHandlerOptions) (*ConsoleHandler, error) {
	if opts.Console == nil {
		return nil, ErrConsoleRequired
	}
	return &ConsoleHandler{
		console: opts.Console,
		level:   opts.Level,
	}, nil
}

// levelColor maps a record level to its console color
func levelColor(level slog.Level) console.Color {
	switch {
	case level >= slog.LevelError:
		return console.Red
	case level >= slog.LevelWarn:
		return console.Yellow
	case level >= slog.LevelInfo:
		return console.Gray
	default:
		return console.DarkGray
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes the record as a single line: the message followed by
// key=value pairs, with accumulated group names prefixing the keys.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder
	line.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}

	for _, attr := range h.attrs {
		fmt.Fprintf(&line, " %s%s=%v", prefix, attr.Key, attr.Value)
	}
	r.Attrs(func(attr slog.Attr) bool {
		fmt.Fprintf(&line, " %s%s=%v", prefix, attr.Key, attr.Value)
		return true
	})

	h.console.Cprintf(levelColor(r.Level), "%s\n", line.String())
	return nil
}

// WithAttrs returns a new handler with additional attributes.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &ConsoleHandler{
		console: h.console,
		level:   h.level,
		attrs:   newAttrs,
		groups:  h.groups,
	}
}

// WithGroup returns a new handler with an additional group.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name

	return &ConsoleHandler{
		console: h.console,
		level:   h.level,
		attrs:   h.attrs,
		groups:  newGroups,
	}
}
