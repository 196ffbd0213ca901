package requirements_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinsync/internal/adapters/requirements"
	"go.trai.ch/pinsync/internal/core/domain"
)

func newResolver(t *testing.T, root string, maxHops int) *requirements.Resolver {
	t.Helper()
	finder := requirements.NewFinder(root, requirements.NewWalker())
	return requirements.NewResolver(finder, quietLogger(t), requirements.ResolverOptions{MaxHops: maxHops})
}

func TestResolver_RootIsGenerated(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"requirements.txt": compiledHeader + "click==8.1.3\n"})

	got, err := newResolver(t, root, 0).Resolve(filepath.Join(root, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "requirements.txt"), got)
}

func TestResolver_FollowsChain(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"requirements.txt":          "# install the development toolchain\n\n-r requirements/local.txt  # pinned below\n",
		"requirements/local.txt":    "-r dev.txt\n",
		"requirements/dev.txt":      compiledHeader + "black==23.1.0\n",
		"requirements/README.md":    "-r nothing.txt\n",
		"docs/requirements-doc.txt": "sphinx\n",
	})

	got, err := newResolver(t, root, 0).Resolve(filepath.Join(root, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "requirements", "dev.txt"), got)
}

func TestResolver_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  error
	}{
		{
			name:  "no marker and no include",
			files: map[string]string{"requirements.txt": "click>=8\n"},
			want:  domain.ErrBrokenRequirementsChain,
		},
		{
			name: "include matches two files",
			files: map[string]string{
				"requirements.txt":   "-r dev.txt\n",
				"backend/dev.txt":    compiledHeader,
				"frontend/dev.txt":   compiledHeader,
				"requirements/x.txt": "",
			},
			want: domain.ErrAmbiguousRequirementsPath,
		},
		{
			name:  "include matches nothing",
			files: map[string]string{"requirements.txt": "-r requirements/dev.txt\n"},
			want:  domain.ErrRequirementsFileNotFound,
		},
		{
			name: "two include directives",
			files: map[string]string{
				"requirements.txt": "-r base.txt\n-r dev.txt\n",
				"base.txt":         compiledHeader,
				"dev.txt":          compiledHeader,
			},
			want: domain.ErrAmbiguousRequirementsPath,
		},
		{
			name: "cycle",
			files: map[string]string{
				"requirements.txt": "-r a.txt\n",
				"a.txt":            "-r b.txt\n",
				"b.txt":            "-r a.txt\n",
			},
			want: domain.ErrRequirementsChainTooDeep,
		},
		{
			name: "broken further down",
			files: map[string]string{
				"requirements.txt": "-r next.txt\n",
				"next.txt":         "# nothing here\n",
			},
			want: domain.ErrBrokenRequirementsChain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files)

			_, err := newResolver(t, root, 4).Resolve(filepath.Join(root, "requirements.txt"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolver_MissingRoot(t *testing.T) {
	root := t.TempDir()

	_, err := newResolver(t, root, 0).Resolve(filepath.Join(root, "requirements.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequirementsFileNotFound)
}

func TestResolver_HopLimitIsExact(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"requirements.txt": "-r one.txt\n",
		"one.txt":          "-r two.txt\n",
		"two.txt":          compiledHeader,
	})
	rootPath := filepath.Join(root, "requirements.txt")

	got, err := newResolver(t, root, 2).Resolve(rootPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "two.txt"), got)

	_, err = newResolver(t, root, 1).Resolve(rootPath)
	assert.ErrorIs(t, err, domain.ErrRequirementsChainTooDeep)
}

func TestResolver_CustomToken(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"requirements.txt": "--requirement locked.txt\n-r ignored.txt-not-a-token\n",
		"locked.txt":       "# GENERATED\nclick==8.1.3\n",
	})
	finder := requirements.NewFinder(root, requirements.NewWalker())
	resolver := requirements.NewResolver(finder, quietLogger(t), requirements.ResolverOptions{
		Marker:       "GENERATED",
		IncludeToken: "--requirement",
	})

	got, err := resolver.Resolve(filepath.Join(root, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "locked.txt"), got)
}
