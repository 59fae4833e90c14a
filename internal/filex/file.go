// Package filex contains small filesystem helpers.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Meta is what the client needs to know about a local file before upload.
type Meta struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Describe stats path and returns its metadata. Directories are rejected.
func Describe(path string) (Meta, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Meta{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	st, err := os.Stat(abs)
	if err != nil {
		return Meta{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return Meta{}, errors.New(path + " is a directory")
	}

	return Meta{Name: st.Name(), Path: abs, Size: st.Size(), ModTime: st.ModTime()}, nil
}

// EnsureParentDir creates the directory that will hold path, if any.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
