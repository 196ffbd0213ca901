package ports

import (
	"time"

	"go.trai.ch/pinsync/internal/core/domain"
)

// MappingCache persists the repository to registry project mapping.
//
//go:generate go run go.uber.org/mock/mockgen -source=mapping_cache.go -destination=mocks/mock_mapping_cache.go -package=mocks
type MappingCache interface {
	// Load reads the mapping stored at path.
	// Returns nil, nil if no mapping is stored.
	Load(path string) (domain.RegistryMapping, error)

	// Store replaces the mapping stored at path.
	Store(path string, mapping domain.RegistryMapping) error

	// IsFresh reports whether the document at path exists, holds at least
	// minSize bytes and was modified less than ttl ago.
	IsFresh(path string, ttl time.Duration, minSize int64) (bool, error)
}
