package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinsync/internal/core/domain"
)

func TestCandidateProject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mirrors-mypy", domain.CandidateProject("https://github.com/pre-commit/mirrors-mypy"))
	assert.Equal(t, "black", domain.CandidateProject("https://github.com/PSF/Black/"))
	assert.Equal(t, "isort", domain.CandidateProject("  https://github.com/pycqa/isort "))
}

func TestRegistryMapping_Entries(t *testing.T) {
	t.Parallel()

	m := domain.RegistryMapping{
		"https://github.com/psf/black":               "black",
		"https://github.com/asottile/pyupgrade":      "pyupgrade",
		"https://github.com/pre-commit/mirrors-mypy": "mypy",
		"https://github.com/example/unmapped":        "",
	}

	entries := m.Entries()
	assert.Equal(t, []domain.MappingEntry{
		{Repo: "https://github.com/asottile/pyupgrade", Project: "pyupgrade"},
		{Repo: "https://github.com/example/unmapped", Project: ""},
		{Repo: "https://github.com/pre-commit/mirrors-mypy", Project: "mypy"},
		{Repo: "https://github.com/psf/black", Project: "black"},
	}, entries)
	assert.Equal(t, 3, m.Mapped())
	assert.Equal(t, "black", m.Project("HTTPS://github.com/psf/black"))
	assert.Empty(t, m.Project("https://github.com/unknown/repo"))
}

func TestNewPathMatch(t *testing.T) {
	t.Parallel()

	none := domain.NewPathMatch(nil)
	assert.Equal(t, domain.MatchNotFound, none.Kind)
	assert.Empty(t, none.Path)

	one := domain.NewPathMatch([]string{"/p/requirements/dev.txt"})
	assert.Equal(t, domain.MatchFound, one.Kind)
	assert.Equal(t, "/p/requirements/dev.txt", one.Path)

	many := domain.NewPathMatch([]string{"/p/a/dev.txt", "/p/b/dev.txt"})
	assert.Equal(t, domain.MatchAmbiguous, many.Kind)
	assert.Empty(t, many.Path)
	assert.Len(t, many.Candidates, 2)
	assert.Equal(t, "ambiguous", many.Kind.String())
}

func TestResult_Counters(t *testing.T) {
	t.Parallel()

	r := &domain.Result{}
	assert.True(t, r.InSync())
	assert.Zero(t, r.Patched())

	r.Mismatches = []domain.MismatchRecord{
		{Project: "mypy", Locked: "1.0.0", Declared: "0.990", Patched: true},
		{Project: "black", Locked: "23.1.0", Declared: "22.6.0"},
	}
	assert.False(t, r.InSync())
	assert.Equal(t, 1, r.Patched())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig("/project")
	assert.Equal(t, "/project/requirements.txt", cfg.RootRequirements)
	assert.Equal(t, "/project/.pinsync/mapping.json", cfg.MappingFile)
	assert.Equal(t, "/etc/reqs.txt", cfg.ResolvePath("/etc/reqs.txt"))
	assert.Equal(t, "/project/reqs/dev.txt", cfg.ResolvePath("reqs/dev.txt"))
	assert.Equal(t, "mypy", cfg.ManualMapping["https://github.com/pre-commit/mirrors-mypy"])
	assert.Equal(t, []string{"python", "toml"}, cfg.Languages)
}
