package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersionFormat is returned when a version string cannot be normalized.
	ErrInvalidVersionFormat = zerr.New("invalid version format")

	// ErrCacheCorrupt is returned when the mapping cache exists but cannot be decoded.
	ErrCacheCorrupt = zerr.New("mapping cache is corrupt")

	// ErrCacheReadFailed is returned when the mapping cache cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read mapping cache")

	// ErrCacheWriteFailed is returned when the mapping cache cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write mapping cache")

	// ErrCacheMarshalFailed is returned when the mapping cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal mapping cache")

	// ErrRegistryUnavailable is returned when the hook catalog or the package registry cannot be queried.
	ErrRegistryUnavailable = zerr.New("package registry unavailable")

	// ErrRegistryResponseInvalid is returned when a catalog or registry response cannot be decoded.
	ErrRegistryResponseInvalid = zerr.New("invalid registry response")

	// ErrRequirementsFileNotFound is returned when an include directive matches no file.
	ErrRequirementsFileNotFound = zerr.New("requirements file not found")

	// ErrAmbiguousRequirementsPath is returned when an include directive matches more than one file.
	ErrAmbiguousRequirementsPath = zerr.New("ambiguous requirements path")

	// ErrBrokenRequirementsChain is returned when a requirements file has neither the marker nor an include.
	ErrBrokenRequirementsChain = zerr.New("requirements chain does not reach a pip-compile generated file")

	// ErrRequirementsChainTooDeep is returned when the include chain exceeds the hop limit.
	ErrRequirementsChainTooDeep = zerr.New("requirements chain too deep")

	// ErrRequirementsReadFailed is returned when a requirements file cannot be read.
	ErrRequirementsReadFailed = zerr.New("failed to read requirements file")

	// ErrRepositoryNotFound is returned when no hook entry matches a write-back target.
	ErrRepositoryNotFound = zerr.New("repository not found in hook configuration")

	// ErrHookConfigNotFound is returned when the hook configuration is absent from the project root.
	ErrHookConfigNotFound = zerr.New("could not find pre-commit configuration")

	// ErrHookConfigReadFailed is returned when the hook configuration cannot be read.
	ErrHookConfigReadFailed = zerr.New("failed to read pre-commit configuration")

	// ErrHookConfigParseFailed is returned when the hook configuration is not valid YAML
	// or lacks a top-level repos list.
	ErrHookConfigParseFailed = zerr.New("failed to parse pre-commit configuration")

	// ErrHookConfigWriteFailed is returned when the hook configuration cannot be written back.
	ErrHookConfigWriteFailed = zerr.New("failed to write pre-commit configuration")

	// ErrConfigLoadFailed is returned when the pinsync settings cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load pinsync settings")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")

	// ErrDriftDetected is returned when at least one hook pin differs from its locked version.
	ErrDriftDetected = zerr.New("pre-commit pins drifted from locked versions")
)
