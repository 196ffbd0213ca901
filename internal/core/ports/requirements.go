package ports

import "go.trai.ch/pinsync/internal/core/domain"

// ChainResolver follows requirements include directives to the pip-compile output.
//
//go:generate go run go.uber.org/mock/mockgen -source=requirements.go -destination=mocks/mock_requirements.go -package=mocks
type ChainResolver interface {
	// Resolve returns the terminal requirements file reachable from rootPath.
	Resolve(rootPath string) (string, error)
}

// VersionExtractor reads exact pins from a requirements file.
type VersionExtractor interface {
	// Extract returns the pinned versions of the wanted packages found in path.
	Extract(path string, wanted map[string]struct{}) (domain.PackageVersionMap, error)
}
