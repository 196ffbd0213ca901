// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pinsync/internal/core/domain"
)

// CatalogFetcher discovers hook repositories and their registry projects.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogFetcher interface {
	// FetchCatalog returns the catalog repositories having at least one hook
	// in one of the given languages, in catalog order.
	FetchCatalog(ctx context.Context, languages []string) ([]domain.CatalogRepo, error)

	// ResolveProjectName returns the registry project for repo.
	// The boolean is false when no project is known.
	ResolveProjectName(ctx context.Context, repo string) (string, bool, error)

	// BuildMapping regenerates the complete mapping from the catalog.
	BuildMapping(ctx context.Context) (domain.RegistryMapping, error)
}

// Registry looks up projects on the package registry.
type Registry interface {
	// LatestVersion returns the latest released version of project.
	// The boolean is false when the registry does not know the project.
	LatestVersion(ctx context.Context, project string) (string, bool, error)
}
