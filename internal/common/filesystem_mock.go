package common

import (
	"io/fs"
	"os"
)

// MockFileSystem implements FileSystem for testing. Files are plain in-memory
// byte slices keyed by path.
type MockFileSystem struct {
	files map[string][]byte
}

// NewMockFileSystem creates an empty MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
	}
}

// AddFile registers a file with the given contents
func (m *MockFileSystem) AddFile(path string, content []byte) {
	m.files[path] = content
}

// ReadFile returns the registered contents for path
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	content, ok := m.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return content, nil
}

// FileExists checks if a file was registered under path
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}
	_, ok := m.files[path]
	return ok, nil
}
