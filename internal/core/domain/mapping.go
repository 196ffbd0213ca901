package domain

import (
	"path"
	"slices"
	"strings"
)

// RegistryMapping maps a lower-cased hook repository URL to its package registry
// project name. An empty project name means no project is known for the repository.
type RegistryMapping map[string]string

// CatalogRepo is a repository listed in the remote hook catalog.
type CatalogRepo struct {
	Repo       string
	SampleHook string
}

// MappingEntry is a single row of a mapping listing.
type MappingEntry struct {
	Repo    string
	Project string
	Latest  string
}

// Project returns the mapped project name for repo, or "" when none is known.
func (m RegistryMapping) Project(repo string) string {
	return m[NormalizeRepo(repo)]
}

// Entries returns the mapping as rows sorted by repository.
func (m RegistryMapping) Entries() []MappingEntry {
	repos := make([]string, 0, len(m))
	for repo := range m {
		repos = append(repos, repo)
	}
	slices.Sort(repos)

	entries := make([]MappingEntry, 0, len(repos))
	for _, repo := range repos {
		entries = append(entries, MappingEntry{Repo: repo, Project: m[repo]})
	}
	return entries
}

// Mapped returns the number of repositories with a non-empty project name.
func (m RegistryMapping) Mapped() int {
	n := 0
	for _, project := range m {
		if project != "" {
			n++
		}
	}
	return n
}

// NormalizeRepo canonicalizes a repository identity for lookups.
func NormalizeRepo(repo string) string {
	return strings.ToLower(strings.TrimSpace(repo))
}

// CandidateProject derives a registry project name from the last path segment
// of a repository URL.
func CandidateProject(repo string) string {
	return path.Base(strings.TrimRight(NormalizeRepo(repo), "/"))
}
