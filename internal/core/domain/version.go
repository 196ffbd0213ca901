package domain

import "go.trai.ch/zerr"

// NormalizeVersion strips a single leading "v" or "V" from a version string.
// An empty version has no first character and is rejected.
func NormalizeVersion(version string) (string, error) {
	if version == "" {
		return "", zerr.Wrap(ErrInvalidVersionFormat, "version is empty")
	}
	if version[0] == 'v' || version[0] == 'V' {
		return version[1:], nil
	}
	return version, nil
}

// VersionPrefix returns the prefix character NormalizeVersion would strip, or "".
func VersionPrefix(version string) string {
	if version != "" && (version[0] == 'v' || version[0] == 'V') {
		return version[:1]
	}
	return ""
}
