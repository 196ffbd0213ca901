package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinsync/internal/core/domain"
	"pgregory.net/rapid"
)

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "plain", version: "1.2.3", want: "1.2.3"},
		{name: "lower prefix", version: "v1.2.3", want: "1.2.3"},
		{name: "upper prefix", version: "V1.2.3", want: "1.2.3"},
		{name: "only one prefix stripped", version: "vv1", want: "v1"},
		{name: "single v", version: "v", want: ""},
		{name: "prefix elsewhere kept", version: "1.0v", want: "1.0v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := domain.NormalizeVersion(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeVersion_Empty(t *testing.T) {
	t.Parallel()

	_, err := domain.NormalizeVersion("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidVersionFormat))
}

func TestVersionPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v", domain.VersionPrefix("v1.0.0"))
	assert.Equal(t, "V", domain.VersionPrefix("V2"))
	assert.Empty(t, domain.VersionPrefix("1.0.0"))
	assert.Empty(t, domain.VersionPrefix(""))
}

// Normalizing twice gives the same result as normalizing once, except when the
// first pass exposes another prefix character, which is stripped only once per call.
func TestProperty_NormalizeVersionIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		version := rapid.StringMatching(`[vV]?[0-9][0-9a-z.+-]{0,12}`).Draw(rt, "version")

		once, err := domain.NormalizeVersion(version)
		if err != nil {
			rt.Fatalf("NormalizeVersion(%q) returned error: %v", version, err)
		}
		twice, err := domain.NormalizeVersion(once)
		if err != nil {
			rt.Fatalf("NormalizeVersion(%q) returned error: %v", once, err)
		}
		if once != twice {
			rt.Fatalf("NormalizeVersion not idempotent: %q -> %q -> %q", version, once, twice)
		}
	})
}

func TestProperty_NormalizeVersionStripsAtMostOneRune(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		version := rapid.StringN(1, 20, -1).Draw(rt, "version")

		got, err := domain.NormalizeVersion(version)
		if err != nil {
			rt.Fatalf("NormalizeVersion(%q) returned error: %v", version, err)
		}
		if len(version)-len(got) > 1 {
			rt.Fatalf("NormalizeVersion(%q) = %q removed more than one byte", version, got)
		}
		if domain.VersionPrefix(version)+got != version {
			rt.Fatalf("prefix %q + %q does not rebuild %q", domain.VersionPrefix(version), got, version)
		}
	})
}
