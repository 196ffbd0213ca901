package config

import "time"

// settings mirrors the keys accepted in .pinsync.yaml and PINSYNC_* variables.
type settings struct {
	RootDir            string            `mapstructure:"root_dir"`
	HookConfig         string            `mapstructure:"hook_config"`
	RootRequirements   string            `mapstructure:"root_requirements"`
	MappingFile        string            `mapstructure:"mapping_file"`
	CacheTTL           time.Duration     `mapstructure:"cache_ttl"`
	CacheMinSize       int64             `mapstructure:"cache_min_size"`
	CatalogURL         string            `mapstructure:"catalog_url"`
	RegistryURL        string            `mapstructure:"registry_url"`
	HTTPTimeout        time.Duration     `mapstructure:"http_timeout"`
	Languages          []string          `mapstructure:"languages"`
	ManualMapping      map[string]string `mapstructure:"manual_mapping"`
	LookupConcurrency  int               `mapstructure:"lookup_concurrency"`
	Marker             string            `mapstructure:"marker"`
	IncludeToken       string            `mapstructure:"include_token"`
	MaxChainHops       int               `mapstructure:"max_chain_hops"`
	StaleCacheFallback bool              `mapstructure:"stale_cache_fallback"`
	KeepRevPrefix      bool              `mapstructure:"keep_rev_prefix"`
	MetricsFile        string            `mapstructure:"metrics_file"`
	LogLevel           string            `mapstructure:"log_level"`
	LogJSON            bool              `mapstructure:"log_json"`
}
