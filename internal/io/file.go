// Package ioutils provides file system utilities for lobbygen.
//
// This package contains functions for:
//   - Listing regular files in a directory
//   - Creating (truncating) output files
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation
// before touching the file system, though the operations themselves
// are not interruptible.
package ioutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ListFiles returns the names of the regular files directly inside dir.
//
// The listing is non-recursive and follows os.ReadDir ordering, which
// is sorted by file name. Symlinks are followed, so a link to a regular
// file is listed while a link to a directory is not.
//
// A missing or unreadable directory is returned as an error.
//
// Example:
//
//	names, err := ListFiles(ctx, "Resources/Audio/Lobby")
//	// names = ["Intro Theme.mp3", "track02.ogg"]
func ListFiles(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
			continue
		}
		if entry.Type()&os.ModeSymlink == 0 {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err == nil && info.Mode().IsRegular() {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// CreateFile opens path for writing, truncating any existing content.
//
// The file is created with mode 0644. The parent directory must exist;
// a missing parent is reported as an error rather than created.
//
// Example:
//
//	f, err := CreateFile(ctx, "Resources/Prototypes/Soundcollections/lobby.yml")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
func CreateFile(ctx context.Context, path string) (*os.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadHead returns up to n bytes from the start of the file at path.
//
// Short files are returned whole; an empty file yields an empty slice.
func ReadHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	return buf[:read], nil
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
