package ports

import "go.trai.ch/pinsync/internal/core/domain"

// HookConfigStore reads and patches the pre-commit configuration document.
//
//go:generate go run go.uber.org/mock/mockgen -source=hook_config.go -destination=mocks/mock_hook_config.go -package=mocks
type HookConfigStore interface {
	// Find returns the path of the pre-commit configuration inside root.
	Find(root string) (string, error)

	// ReadAll returns the remote hook entries in document order.
	// Local and meta entries are excluded.
	ReadAll(path string) ([]domain.HookEntry, error)

	// WriteVersion sets the rev of the first entry whose repo contains repoSubstring.
	// Every other field and the entry order are preserved.
	WriteVersion(path, repoSubstring, version string) error
}
