package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// diskStorage implements Storage on the local content directory.
// It is safe for concurrent use: names are generated collision-free by the
// caller and writes go through a temp file plus rename.
type diskStorage struct {
	dir string
}

// NewDisk creates a disk-backed Storage rooted at dir, creating the
// directory if needed.
func NewDisk(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("content directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content directory: %w", err)
	}
	return &diskStorage{dir: dir}, nil
}

// Put writes to a temp file in the content directory and renames it into
// place, so a failed upload never leaves a partial file under the final
// name.
func (s *diskStorage) Put(ctx context.Context, name string, r io.Reader) (FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return FileInfo{}, err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return FileInfo{}, fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return FileInfo{}, fmt.Errorf("write file content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return FileInfo{}, fmt.Errorf("close file: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return FileInfo{}, fmt.Errorf("place file: %w", err)
	}

	return FileInfo{Name: name, Path: path, Size: n}, nil
}

// Delete removes a file by path. Absence is success, not an error, since
// deletions may race with earlier cleanup.
func (s *diskStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
