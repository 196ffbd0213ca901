package domain

// MismatchRecord describes one hook whose declared revision differs from the
// locked version of its mapped project.
type MismatchRecord struct {
	Repo     string
	Project  string
	Locked   string
	Declared string
	// Patched is set once the locked version has been written back.
	Patched bool
}

// Result summarizes one reconciliation run.
type Result struct {
	// ConfigPath is the pre-commit configuration that was reconciled.
	ConfigPath string
	// RequirementsFile is the terminal pip-compile file versions were read from.
	RequirementsFile string
	// Hooks is the number of remote hook entries compared.
	Hooks int
	// Mapped is the number of hooks with a known registry project.
	Mapped int
	// Unlocked lists mapped projects absent from the requirements file.
	Unlocked []string
	// Mismatches holds one record per drifted hook, in document order.
	Mismatches []MismatchRecord
	// Errors holds non-fatal per-hook errors.
	Errors []error
	// MappingRegenerated is set when the mapping was rebuilt during the run.
	MappingRegenerated bool
	// MappingSize is the number of repositories in the mapping used.
	MappingSize int
}

// Patched returns the number of mismatches written back.
func (r *Result) Patched() int {
	n := 0
	for _, m := range r.Mismatches {
		if m.Patched {
			n++
		}
	}
	return n
}

// InSync reports whether no drift was found.
func (r *Result) InSync() bool {
	return len(r.Mismatches) == 0
}
