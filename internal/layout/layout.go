// Package layout checks and writes the on-disk structure of a mobile project.
package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Permissions for generated files and directories. Resource files are
// committed to source control alongside the app, so they are world-readable.
const (
	FilePerms = 0o644
	DirPerms  = 0o755
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(fsys afero.Fs, dir string) error {
	if err := fsys.MkdirAll(dir, DirPerms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile writes data to path through a temporary sibling file that is
// renamed into place, creating parent directories as needed.
func WriteFile(fsys afero.Fs, path string, data []byte, logger hclog.Logger) error {
	if err := EnsureDir(fsys, filepath.Dir(path)); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := afero.WriteFile(fsys, tmpPath, data, FilePerms); err != nil {
		return fmt.Errorf("failed to write temporary file %s: %w", tmpPath, err)
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	logger.Trace("file written", "path", path, "size", len(data))
	return nil
}

// SameContent reports whether the file at path already holds exactly data.
// A missing file is never the same.
func SameContent(fsys afero.Fs, path string, data []byte) bool {
	existing, err := afero.ReadFile(fsys, path)
	if err != nil {
		return false
	}
	return string(existing) == string(data)
}

// Remove deletes path (file or directory tree) if it exists. It reports
// whether anything was removed.
func Remove(fsys afero.Fs, path string) (bool, error) {
	if _, err := fsys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := fsys.RemoveAll(path); err != nil {
		return false, fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return true, nil
}
