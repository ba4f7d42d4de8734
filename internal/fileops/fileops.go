// Package fileops wraps the filesystem mutations the browser exposes.
// Every operation either fully applies or leaves the tree untouched, so a
// failed mutation never needs a cleanup re-scan.
package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName rejects names that are empty or would escape the current
// directory.
var ErrInvalidName = errors.New("invalid name")

func validateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// Rename gives the entry at oldPath a new name within its directory. The
// destination must not already exist; os.Rename alone would silently
// clobber it.
func Rename(oldPath, newName string) (string, error) {
	if err := validateName(newName); err != nil {
		return "", err
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if newPath == oldPath {
		return newPath, nil
	}
	if _, err := os.Lstat(newPath); err == nil {
		return "", fmt.Errorf("rename to %q: %w", newName, fs.ErrExist)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	return newPath, nil
}

// Delete removes a file, or a whole directory tree when isDir is set.
func Delete(path string, isDir bool) error {
	var err error
	if isDir {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// CreateFile creates a new empty file in dir. Existing files are never
// truncated.
func CreateFile(dir, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	return path, nil
}

// CreateDir creates a new directory in dir.
func CreateDir(dir, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.Mkdir(path, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	return path, nil
}
