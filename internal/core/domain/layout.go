package domain

import (
	"path/filepath"
	"time"
)

const (
	// StateDirName is the name of the pinsync state directory in the project root.
	StateDirName = ".pinsync"

	// MappingFileName is the name of the registry mapping cache document.
	MappingFileName = "mapping.json"

	// SettingsFileName is the base name of the optional pinsync settings file.
	SettingsFileName = ".pinsync"

	// EnvFileName is the dotenv file loaded from the project root.
	EnvFileName = ".env"

	// HookConfigFileName is the name of the pre-commit configuration file.
	HookConfigFileName = ".pre-commit-config.yaml"

	// RootRequirementsFileName is the requirements file the include chain starts from.
	RootRequirementsFileName = "requirements.txt"

	// PipCompileMarker identifies a requirements file generated by pip-compile.
	PipCompileMarker = "autogenerated by pip-compile"

	// IncludeToken introduces a nested requirements file.
	IncludeToken = "-r"

	// DefaultCatalogURL lists every hook repository known to pre-commit.com.
	DefaultCatalogURL = "https://pre-commit.com/all-hooks.json"

	// DefaultRegistryURL is the PyPI JSON API base.
	DefaultRegistryURL = "https://pypi.org/pypi"

	// DefaultCacheTTL is how long a generated mapping is reused (about six months).
	DefaultCacheTTL = 15724800 * time.Second

	// DefaultCacheMinSize is the size below which a mapping document counts as empty.
	DefaultCacheMinSize = 5

	// DefaultMaxChainHops bounds the requirements include walk.
	DefaultMaxChainHops = 16

	// DefaultLookupConcurrency is the number of registry lookups in flight.
	DefaultLookupConcurrency = 1

	// DefaultHTTPTimeout bounds each catalog and registry request.
	DefaultHTTPTimeout = 30 * time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultLanguages are the catalog hook languages that map to PyPI projects.
func DefaultLanguages() []string {
	return []string{"python", "toml"}
}

// DefaultManualMapping returns repositories whose PyPI project cannot be
// derived from the URL.
func DefaultManualMapping() map[string]string {
	return map[string]string{
		"https://github.com/pre-commit/mirrors-autopep8":            "autopep8",
		"https://github.com/pre-commit/mirrors-mypy":                "mypy",
		"https://github.com/pre-commit/mirrors-yapf":                "yapf",
		"https://github.com/falconsocial/pre-commit-mirrors-pep257": "pep257",
	}
}

// DefaultMappingPath returns the mapping cache location relative to the project root.
func DefaultMappingPath() string {
	return filepath.Join(StateDirName, MappingFileName)
}
