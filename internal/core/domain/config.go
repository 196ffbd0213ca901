package domain

import "time"

// Config holds the settings shared by every reconciliation collaborator.
// It is built once at startup and passed explicitly.
type Config struct {
	// RootDir is the absolute project root.
	RootDir string
	// HookConfigName is the pre-commit configuration file name inside RootDir.
	HookConfigName string
	// RootRequirements is the absolute path the include chain starts from.
	RootRequirements string
	// MappingFile is the absolute path of the mapping cache document.
	MappingFile string

	CacheTTL     time.Duration
	CacheMinSize int64

	CatalogURL  string
	RegistryURL string
	HTTPTimeout time.Duration
	// Languages filters catalog repositories by hook language.
	Languages []string
	// ManualMapping overrides registry discovery; keys are lower-cased URLs.
	ManualMapping map[string]string
	// LookupConcurrency bounds parallel registry lookups while building the mapping.
	LookupConcurrency int

	Marker       string
	IncludeToken string
	MaxChainHops int

	// StaleCacheFallback reuses an expired mapping when the registry is unreachable.
	StaleCacheFallback bool
	// KeepRevPrefix re-applies a declared "v" prefix when patching a pin.
	// Off by default: a patched rev holds the bare locked version.
	KeepRevPrefix bool

	// MetricsFile receives a Prometheus textfile after each run when set.
	MetricsFile string

	LogLevel string
	LogJSON  bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(root string) *Config {
	return &Config{
		RootDir:           root,
		HookConfigName:    HookConfigFileName,
		RootRequirements:  joinRoot(root, RootRequirementsFileName),
		MappingFile:       joinRoot(root, DefaultMappingPath()),
		CacheTTL:          DefaultCacheTTL,
		CacheMinSize:      DefaultCacheMinSize,
		CatalogURL:        DefaultCatalogURL,
		RegistryURL:       DefaultRegistryURL,
		HTTPTimeout:       DefaultHTTPTimeout,
		Languages:         DefaultLanguages(),
		ManualMapping:     DefaultManualMapping(),
		LookupConcurrency: DefaultLookupConcurrency,
		Marker:            PipCompileMarker,
		IncludeToken:      IncludeToken,
		MaxChainHops:      DefaultMaxChainHops,
		KeepRevPrefix:     false,
		LogLevel:          "info",
	}
}
