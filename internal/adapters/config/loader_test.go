package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinsync/internal/adapters/config"
	"go.trai.ch/pinsync/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

// unsetForTest clears key for the duration of the test so a .env file can set it.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.RootDir)
	assert.Equal(t, domain.HookConfigFileName, cfg.HookConfigName)
	assert.Equal(t, filepath.Join(root, "requirements.txt"), cfg.RootRequirements)
	assert.Equal(t, filepath.Join(root, ".pinsync", "mapping.json"), cfg.MappingFile)
	assert.Equal(t, domain.DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, int64(domain.DefaultCacheMinSize), cfg.CacheMinSize)
	assert.Equal(t, domain.DefaultCatalogURL, cfg.CatalogURL)
	assert.Equal(t, domain.DefaultRegistryURL, cfg.RegistryURL)
	assert.Equal(t, []string{"python", "toml"}, cfg.Languages)
	assert.Equal(t, domain.DefaultManualMapping(), cfg.ManualMapping)
	assert.Equal(t, domain.DefaultMaxChainHops, cfg.MaxChainHops)
	assert.Equal(t, 1, cfg.LookupConcurrency)
	assert.Equal(t, domain.PipCompileMarker, cfg.Marker)
	assert.Equal(t, "-r", cfg.IncludeToken)
	assert.False(t, cfg.KeepRevPrefix)
	assert.False(t, cfg.StaleCacheFallback)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_SettingsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".pinsync.yaml", `
cache_ttl: 24h
languages: [python]
max_chain_hops: 4
lookup_concurrency: 8
mapping_file: cache/map.json
metrics_file: /var/lib/node_exporter/pinsync.prom
registry_url: http://localhost:8080/pypi/
stale_cache_fallback: true
keep_rev_prefix: true
manual_mapping:
  "https://github.com/Example/Mirror-Tool": tool
`)

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, []string{"python"}, cfg.Languages)
	assert.Equal(t, 4, cfg.MaxChainHops)
	assert.Equal(t, 8, cfg.LookupConcurrency)
	assert.Equal(t, filepath.Join(root, "cache", "map.json"), cfg.MappingFile)
	assert.Equal(t, "/var/lib/node_exporter/pinsync.prom", cfg.MetricsFile)
	assert.Equal(t, "http://localhost:8080/pypi", cfg.RegistryURL)
	assert.True(t, cfg.StaleCacheFallback)
	assert.True(t, cfg.KeepRevPrefix)

	assert.Equal(t, "tool", cfg.ManualMapping["https://github.com/example/mirror-tool"])
	assert.Equal(t, "mypy", cfg.ManualMapping["https://github.com/pre-commit/mirrors-mypy"],
		"file entries are merged over the built-in mapping")
}

func TestLoad_ManualMappingOverridesBuiltIn(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".pinsync.yaml", `
manual_mapping:
  "https://github.com/Pre-Commit/Mirrors-Mypy": ""
  "https://github.com/pre-commit/mirrors-yapf": yapf-fork
`)

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	project, ok := cfg.ManualMapping["https://github.com/pre-commit/mirrors-mypy"]
	assert.True(t, ok)
	assert.Empty(t, project)
	assert.Equal(t, "yapf-fork", cfg.ManualMapping["https://github.com/pre-commit/mirrors-yapf"])
	assert.Equal(t, "autopep8", cfg.ManualMapping["https://github.com/pre-commit/mirrors-autopep8"])
	assert.Len(t, cfg.ManualMapping, len(domain.DefaultManualMapping()))
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".pinsync.yaml", "max_chain_hops: 4\nlog_level: warn\n")
	t.Setenv("PINSYNC_MAX_CHAIN_HOPS", "9")
	t.Setenv("PINSYNC_CACHE_TTL", "90m")
	t.Setenv("PINSYNC_LANGUAGES", "python,toml,rust")

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.MaxChainHops)
	assert.Equal(t, 90*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"python", "toml", "rust"}, cfg.Languages)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_DotEnvFile(t *testing.T) {
	root := t.TempDir()
	unsetForTest(t, "PINSYNC_HOOK_CONFIG")
	unsetForTest(t, "PINSYNC_LOG_JSON")
	writeFile(t, root, ".env", "PINSYNC_HOOK_CONFIG=hooks.yaml\nPINSYNC_LOG_JSON=true\n")

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.Equal(t, "hooks.yaml", cfg.HookConfigName)
	assert.True(t, cfg.LogJSON)
}

func TestLoad_RootDirOverride(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeFile(t, root, ".pinsync.yaml", "root_dir: "+other+"\n")

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.Equal(t, other, cfg.RootDir)
	assert.Equal(t, filepath.Join(other, "requirements.txt"), cfg.RootRequirements)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings string
		isLoad   bool
	}{
		{name: "malformed yaml", settings: "languages: [python\n"},
		{name: "zero hops", settings: "max_chain_hops: 0\n", isLoad: true},
		{name: "zero concurrency", settings: "lookup_concurrency: 0\n", isLoad: true},
		{name: "hook config path", settings: "hook_config: nested/hooks.yaml\n", isLoad: true},
		{name: "empty include token", settings: "include_token: \"\"\n", isLoad: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, ".pinsync.yaml", tt.settings)

			cfg, err := config.NewLoader().Load(root)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), domain.ErrConfigLoadFailed.Error())
			if tt.isLoad {
				assert.ErrorIs(t, err, domain.ErrConfigLoadFailed)
			}
		})
	}
}
