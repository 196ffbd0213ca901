package requirements

import (
	"bufio"
	"errors"
	"os"
	"regexp"

	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// pinPattern matches "name==version" with optional extras. The version stops
// at whitespace, an environment marker, a comment or a line continuation.
// Arbitrary equality ("===") is not a pin.
var pinPattern = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)(?:\[[^\]]*\])?\s*==\s*([^\s;#\\=][^\s;#\\]*)`)

// Extractor implements ports.VersionExtractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the exact pins in path for the wanted package names.
// Names are matched exactly. When a package is pinned twice the last line wins.
func (e *Extractor) Extract(path string, wanted map[string]struct{}) (domain.PackageVersionMap, error) {
	//nolint:gosec // Path is the resolved terminal requirements file
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(domain.ErrRequirementsReadFailed, zerr.With(err, "path", path))
	}
	defer func() {
		_ = f.Close()
	}()

	versions := make(domain.PackageVersionMap)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		name, version, ok := parsePin(sc.Text())
		if !ok {
			continue
		}
		if _, want := wanted[name]; !want {
			continue
		}
		normalized, err := domain.NormalizeVersion(version)
		if err != nil {
			continue
		}
		versions[name] = normalized
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(domain.ErrRequirementsReadFailed, zerr.With(err, "path", path))
	}
	return versions, nil
}

func parsePin(line string) (name, version string, ok bool) {
	m := pinPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
