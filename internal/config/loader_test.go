package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-term-logger/internal/common"
)

func TestLoader_Parse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, spec *Spec)
		wantErr error
	}{
		{
			name:    "empty content keeps defaults",
			content: "",
			check: func(t *testing.T, spec *Spec) {
				assert.Equal(t, DefaultSpec(), spec)
			},
		},
		{
			name: "full document",
			content: `
[output]
color = "always"
padding = 4

[spinner]
interval_ms = 50
clear_on_release = true

[progress]
bar_width = 20
clear_on_release = true
`,
			check: func(t *testing.T, spec *Spec) {
				assert.Equal(t, ColorModeAlways, spec.Output.Color)
				assert.Equal(t, 4, spec.Output.Padding)
				assert.Equal(t, 50, spec.Spinner.IntervalMS)
				assert.True(t, spec.Spinner.ClearOnRelease)
				assert.Equal(t, 20, spec.Progress.BarWidth)
				assert.True(t, spec.Progress.ClearOnRelease)
			},
		},
		{
			name: "partial document keeps remaining defaults",
			content: `
[progress]
bar_width = 30
`,
			check: func(t *testing.T, spec *Spec) {
				assert.Equal(t, ColorModeAuto, spec.Output.Color)
				assert.Equal(t, 100, spec.Spinner.IntervalMS)
				assert.Equal(t, 30, spec.Progress.BarWidth)
			},
		},
		{
			name:    "unknown color mode",
			content: "[output]\ncolor = \"sometimes\"\n",
			wantErr: ErrInvalidColorMode,
		},
		{
			name:    "zero bar width",
			content: "[progress]\nbar_width = 0\n",
			wantErr: ErrInvalidBarWidth,
		},
		{
			name:    "zero spinner interval",
			content: "[spinner]\ninterval_ms = 0\n",
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "padding out of byte range",
			content: "[output]\npadding = 300\n",
			wantErr: ErrInvalidPadding,
		},
		{
			name:    "negative padding",
			content: "[output]\npadding = -1\n",
			wantErr: ErrInvalidPadding,
		},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := loader.Parse([]byte(tt.content))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, spec)
		})
	}
}

func TestLoader_Parse_MalformedTOML(t *testing.T) {
	_, err := NewLoader().Parse([]byte("[output\ncolor ="))
	assert.Error(t, err)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoader_LoadSpec(t *testing.T) {
	fs := common.NewMockFileSystem()
	fs.AddFile("/etc/termlog.toml", []byte("[output]\ncolor = \"never\"\n"))

	loader := NewLoaderWithFS(fs)

	t.Run("existing file", func(t *testing.T) {
		spec, err := loader.LoadSpec("/etc/termlog.toml")
		require.NoError(t, err)
		assert.Equal(t, ColorModeNever, spec.Output.Color)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadSpec("/etc/absent.toml")
		assert.Error(t, err)
		assert.ErrorContains(t, err, "reading config file")
	})
}
