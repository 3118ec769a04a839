package storage

import (
	"context"
	"io"
)

// Package storage contains the content-directory abstraction for uploaded
// file bytes. Files are written once under a generated name and never
// reused; deletion is the only mutation.

// FileInfo describes a stored file.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Storage persists uploaded file bytes under a caller-chosen name.
type Storage interface {
	// Put streams the reader's content to a file with the given name and
	// returns its info. On any failure no partial file is left behind.
	Put(ctx context.Context, name string, r io.Reader) (FileInfo, error)
	// Delete removes a stored file by path. A file that is already absent
	// is treated as success.
	Delete(ctx context.Context, path string) error
}
