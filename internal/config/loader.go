// Package config provides loading and validation of the optional TOML
// configuration used to set up a console: color mode, initial padding, and
// widget rendering parameters. It supports TOML format; absent fields keep
// their defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-term-logger/internal/common"
)

// Error definitions for the config package
var (
	// ErrInvalidColorMode is returned for a color mode outside auto/always/never
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrInvalidBarWidth is returned when the progress bar width is below 1
	ErrInvalidBarWidth = errors.New("progress bar width must be at least 1")

	// ErrInvalidInterval is returned when the spinner interval is below 1ms
	ErrInvalidInterval = errors.New("spinner interval must be at least 1ms")

	// ErrInvalidPadding is returned when the padding does not fit a byte
	ErrInvalidPadding = errors.New("padding must be between 0 and 255")
)

// ColorMode names a color emission policy in the config file
type ColorMode string

// Color modes accepted in the config file
const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

// OutputSpec configures the console sink
type OutputSpec struct {
	Color   ColorMode `toml:"color"`
	Padding int       `toml:"padding"`
}

// SpinnerSpec configures the spin waiter
type SpinnerSpec struct {
	IntervalMS     int  `toml:"interval_ms"`
	ClearOnRelease bool `toml:"clear_on_release"`
}

// ProgressSpec configures the progress waiter
type ProgressSpec struct {
	BarWidth       int  `toml:"bar_width"`
	ClearOnRelease bool `toml:"clear_on_release"`
}

// Spec is the root configuration document
type Spec struct {
	Output   OutputSpec   `toml:"output"`
	Spinner  SpinnerSpec  `toml:"spinner"`
	Progress ProgressSpec `toml:"progress"`
}

// DefaultSpec returns a Spec with all defaults applied
func DefaultSpec() *Spec {
	return &Spec{
		Output: OutputSpec{
			Color:   ColorModeAuto,
			Padding: 0,
		},
		Spinner: SpinnerSpec{
			IntervalMS:     100,
			ClearOnRelease: false,
		},
		Progress: ProgressSpec{
			BarWidth:       10,
			ClearOnRelease: false,
		},
	}
}

// Validate checks the spec for values outside their documented ranges
func (s *Spec) Validate() error {
	switch s.Output.Color {
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, s.Output.Color)
	}
	if s.Output.Padding < 0 || s.Output.Padding > 255 {
		return fmt.Errorf("%w: %d", ErrInvalidPadding, s.Output.Padding)
	}
	if s.Spinner.IntervalMS < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, s.Spinner.IntervalMS)
	}
	if s.Progress.BarWidth < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBarWidth, s.Progress.BarWidth)
	}
	return nil
}

// Loader handles loading and validating configurations
type Loader struct {
	fs common.FileSystem
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return NewLoaderWithFS(common.NewDefaultFileSystem())
}

// NewLoaderWithFS creates a new config loader with a custom FileSystem
func NewLoaderWithFS(fs common.FileSystem) *Loader {
	return &Loader{
		fs: fs,
	}
}

// LoadSpec loads, parses, and validates the configuration file at path
func (l *Loader) LoadSpec(path string) (*Spec, error) {
	content, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return l.Parse(content)
}

// Parse decodes TOML content on top of the defaults and validates the result
func (l *Loader) Parse(content []byte) (*Spec, error) {
	spec := DefaultSpec()
	if err := toml.Unmarshal(content, spec); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}
