package domain

import "path/filepath"

func joinRoot(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// ResolvePath returns p made absolute against the project root.
func (c *Config) ResolvePath(p string) string {
	return joinRoot(c.RootDir, p)
}
