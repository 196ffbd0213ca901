package requirements

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// Finder locates files below the project root from a partial path.
type Finder struct {
	root   string
	walker *Walker
}

// NewFinder creates a Finder searching below root.
func NewFinder(root string, walker *Walker) *Finder {
	return &Finder{root: root, walker: walker}
}

// Find returns every file whose root-relative path ends with fragment,
// compared segment by segment. Segments may be glob patterns.
func (f *Finder) Find(fragment string) (domain.PathMatch, error) {
	want := splitFragment(fragment)
	if len(want) == 0 {
		return domain.PathMatch{}, zerr.With(zerr.New("empty include path"), "fragment", fragment)
	}
	for _, seg := range want {
		if _, err := path.Match(seg, ""); err != nil {
			return domain.PathMatch{}, zerr.With(zerr.Wrap(err, "invalid include pattern"), "fragment", fragment)
		}
	}

	var candidates []string
	for file := range f.walker.WalkFiles(f.root) {
		rel, err := filepath.Rel(f.root, file)
		if err != nil {
			continue
		}
		if hasSuffixSegments(strings.Split(filepath.ToSlash(rel), "/"), want) {
			candidates = append(candidates, file)
		}
	}
	slices.Sort(candidates)
	return domain.NewPathMatch(candidates), nil
}

// splitFragment cleans fragment and drops leading "." and ".." segments,
// which carry no information once the search is rooted at the project.
func splitFragment(fragment string) []string {
	cleaned := path.Clean(filepath.ToSlash(strings.TrimSpace(fragment)))
	cleaned = strings.TrimPrefix(cleaned, "/")
	segs := strings.Split(cleaned, "/")
	for len(segs) > 0 && (segs[0] == "." || segs[0] == ".." || segs[0] == "") {
		segs = segs[1:]
	}
	return segs
}

func hasSuffixSegments(have, want []string) bool {
	if len(want) > len(have) {
		return false
	}
	offset := len(have) - len(want)
	for i, pattern := range want {
		if ok, _ := path.Match(pattern, have[offset+i]); !ok {
			return false
		}
	}
	return true
}
