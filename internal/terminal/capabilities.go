// Package terminal provides helpers for detecting terminal capabilities and
// determining whether the current process should be treated as interactive
// or running in a CI/non-interactive environment.
package terminal

import (
	"os"
)

// Options contains command-line level overrides for capability detection
type Options struct {
	ForceInteractive    bool // Treat the environment as interactive regardless of detection
	ForceNonInteractive bool // Treat the environment as non-interactive regardless of detection
	ForceColor          bool // Force color output regardless of environment
	DisableColor        bool // Disable color output regardless of environment
}

// Capabilities reports whether the current output environment is interactive
// and whether color output should be enabled.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

// EnvCapabilities implements Capabilities from the process environment
// (TTY state, CI markers, TERM, NO_COLOR/CLICOLOR/CLICOLOR_FORCE) combined
// with explicit overrides from Options.
type EnvCapabilities struct {
	options Options
}

// NewCapabilities creates a new EnvCapabilities with the given options
func NewCapabilities(options Options) *EnvCapabilities {
	return &EnvCapabilities{options: options}
}

// IsInteractive returns true if the current environment is interactive.
// Priority: explicit options, then CI detection, then TTY detection.
func (c *EnvCapabilities) IsInteractive() bool {
	if c.options.ForceInteractive {
		return true
	}
	if c.options.ForceNonInteractive {
		return false
	}
	if isCIEnvironment() {
		return false
	}
	return isTerminal()
}

// SupportsColor returns true if color output should be enabled.
// Priority:
//  1. Command line options (ForceColor / DisableColor)
//  2. CLICOLOR_FORCE=1 (overrides interactive detection)
//  3. NO_COLOR (any value, even empty, disables color)
//  4. CLICOLOR (only applies in interactive mode)
//  5. TERM-based auto-detection in interactive mode
func (c *EnvCapabilities) SupportsColor() bool {
	if c.options.ForceColor {
		return true
	}
	if c.options.DisableColor {
		return false
	}

	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); isTruthy(cliColorForce) {
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if !c.IsInteractive() || !termSupportsColor() {
		return false
	}

	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}

	return true
}
