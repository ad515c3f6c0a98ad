package downloader

import (
	"io"
	"os"
)

// FileSystem is the subset of filesystem operations the downloader performs.
type FileSystem interface {
	Create(path string) (io.WriteCloser, error)
	Remove(path string) error
}

// OSFileSystem implements FileSystem using the local OS.
type OSFileSystem struct{}

// Create truncates an existing file, matching the overwrite semantics of a fresh download.
func (OSFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func (OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}
