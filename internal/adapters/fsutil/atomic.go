// Package fsutil holds file helpers shared by the file-backed adapters.
package fsutil

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place with the given permissions. Readers see either the old or the
// new content, never a partial write.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temporary file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temporary file")
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return zerr.Wrap(err, "failed to set file permissions")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to replace file")
	}
	return nil
}

// FileMode returns the permissions of the file at path, or fallback when it
// cannot be stat'ed.
func FileMode(path string, fallback os.FileMode) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return fallback
	}
	return info.Mode().Perm()
}
