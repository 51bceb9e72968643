// Package output writes generated files, creating parent directories as needed.
package output

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// FileSystem abstracts the file operations a Writer needs.
type FileSystem interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm) // #nosec G306 -- generated source, not sensitive
}

// Writer places output files on disk.
type Writer struct {
	FS FileSystem
}

// NewWriter returns a Writer backed by the real file system.
func NewWriter() *Writer {
	return &Writer{FS: OSFileSystem{}}
}

// Write creates the parent directories of path and writes data to it,
// replacing any existing file.
func (w *Writer) Write(path string, data []byte) error {
	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := w.FS.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := w.FS.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
