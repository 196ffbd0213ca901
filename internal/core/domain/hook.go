package domain

const (
	// LocalRepo is the reserved repo value for hooks defined inside the project.
	LocalRepo = "local"

	// MetaRepo is the reserved repo value for pre-commit's own meta hooks.
	MetaRepo = "meta"
)

// HookEntry is a single remote repository pinned in the pre-commit configuration.
type HookEntry struct {
	// Repo is the repository URL, trimmed and lower-cased.
	Repo string
	// Rev is the pinned revision as declared, trimmed.
	Rev string
}

// IsReservedRepo reports whether repo names a pseudo-repository that carries no pin.
func IsReservedRepo(repo string) bool {
	return repo == LocalRepo || repo == MetaRepo
}
