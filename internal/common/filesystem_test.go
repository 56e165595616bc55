//nolint:revive // var-naming: package name "common" is intentional for shared internal utilities
package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFileSystem_ReadFile(t *testing.T) {
	fs := NewDefaultFileSystem()

	t.Run("empty path", func(t *testing.T) {
		_, err := fs.ReadFile("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[output]\n"), 0o600))

		content, err := fs.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("[output]\n"), content)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})
}

func TestDefaultFileSystem_FileExists(t *testing.T) {
	fs := NewDefaultFileSystem()

	path := filepath.Join(t.TempDir(), "present")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	exists, err := fs.FileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.FileExists(path + ".absent")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = fs.FileExists("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestMockFileSystem(t *testing.T) {
	fs := NewMockFileSystem()
	fs.AddFile("/etc/termlog.toml", []byte("bar_width = 10"))

	content, err := fs.ReadFile("/etc/termlog.toml")
	require.NoError(t, err)
	assert.Equal(t, []byte("bar_width = 10"), content)

	exists, err := fs.FileExists("/etc/termlog.toml")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = fs.ReadFile("/etc/unknown.toml")
	assert.Error(t, err)
}
