package requirements

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// defaultIgnores are directory names never searched for requirements files.
var defaultIgnores = []string{"node_modules", ".venv", "venv", ".tox", ".nox", "__pycache__", ".mypy_cache"}

// Walker yields the regular files below a root directory.
type Walker struct {
	ignores []string
}

// NewWalker creates a Walker that skips the given directory name patterns
// in addition to VCS metadata.
func NewWalker(ignores ...string) *Walker {
	return &Walker{ignores: ignores}
}

// WalkFiles yields all files below root. Unreadable directories are skipped.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return err
			}

			if d.IsDir() {
				if path != root && w.skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) skipDir(name string) bool {
	// Always skip VCS metadata.
	if name == ".git" || name == ".jj" || name == ".hg" {
		return true
	}
	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
