package domain

// PackageVersionMap maps a package name, as declared in the requirements file,
// to its normalized pinned version.
type PackageVersionMap map[string]string

// MatchKind classifies the outcome of a partial path search.
type MatchKind int

const (
	// MatchNotFound means no file matched.
	MatchNotFound MatchKind = iota
	// MatchFound means exactly one file matched.
	MatchFound
	// MatchAmbiguous means more than one file matched.
	MatchAmbiguous
)

// String returns the kind name.
func (k MatchKind) String() string {
	switch k {
	case MatchFound:
		return "found"
	case MatchAmbiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

// PathMatch is the result of resolving a partial path against the project tree.
// Path is set only for MatchFound; Candidates lists every match.
type PathMatch struct {
	Kind       MatchKind
	Path       string
	Candidates []string
}

// NewPathMatch classifies a sorted list of candidate paths.
func NewPathMatch(candidates []string) PathMatch {
	switch len(candidates) {
	case 0:
		return PathMatch{Kind: MatchNotFound}
	case 1:
		return PathMatch{Kind: MatchFound, Path: candidates[0], Candidates: candidates}
	default:
		return PathMatch{Kind: MatchAmbiguous, Candidates: candidates}
	}
}
