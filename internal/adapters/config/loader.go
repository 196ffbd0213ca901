// Package config loads pinsync settings from .pinsync.yaml, .env and the environment.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes every environment variable pinsync reads.
const EnvPrefix = "PINSYNC"

// keyDelimiter replaces viper's "." so repository URLs can be map keys.
const keyDelimiter = "::"

// Loader builds a domain.Config. Precedence, highest first: environment
// variables, the project .env file, .pinsync.yaml, defaults.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the settings for the project rooted at root.
func (l *Loader) Load(root string) (*domain.Config, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "root", root)
	}

	if err := loadEnvFile(filepath.Join(absRoot, domain.EnvFileName)); err != nil {
		return nil, err
	}

	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigName(domain.SettingsFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(absRoot)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "root", absRoot)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}

	if s.RootDir != "" {
		absRoot, err = filepath.Abs(s.RootDir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "root_dir", s.RootDir)
		}
	}

	cfg := build(absRoot, &s)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "env_file", path)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := domain.DefaultConfig("")

	v.SetDefault("root_dir", "")
	v.SetDefault("hook_config", d.HookConfigName)
	v.SetDefault("root_requirements", domain.RootRequirementsFileName)
	v.SetDefault("mapping_file", domain.DefaultMappingPath())
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("cache_min_size", d.CacheMinSize)
	v.SetDefault("catalog_url", d.CatalogURL)
	v.SetDefault("registry_url", d.RegistryURL)
	v.SetDefault("http_timeout", d.HTTPTimeout)
	v.SetDefault("languages", d.Languages)
	v.SetDefault("lookup_concurrency", d.LookupConcurrency)
	v.SetDefault("marker", d.Marker)
	v.SetDefault("include_token", d.IncludeToken)
	v.SetDefault("max_chain_hops", d.MaxChainHops)
	v.SetDefault("stale_cache_fallback", d.StaleCacheFallback)
	v.SetDefault("keep_rev_prefix", d.KeepRevPrefix)
	v.SetDefault("metrics_file", "")
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_json", false)
}

func build(root string, s *settings) *domain.Config {
	cfg := domain.DefaultConfig(root)

	cfg.HookConfigName = s.HookConfig
	cfg.RootRequirements = cfg.ResolvePath(s.RootRequirements)
	cfg.MappingFile = cfg.ResolvePath(s.MappingFile)
	cfg.CacheTTL = s.CacheTTL
	cfg.CacheMinSize = s.CacheMinSize
	cfg.CatalogURL = s.CatalogURL
	cfg.RegistryURL = strings.TrimRight(s.RegistryURL, "/")
	cfg.HTTPTimeout = s.HTTPTimeout
	cfg.Languages = s.Languages
	cfg.LookupConcurrency = s.LookupConcurrency
	cfg.Marker = s.Marker
	cfg.IncludeToken = s.IncludeToken
	cfg.MaxChainHops = s.MaxChainHops
	cfg.StaleCacheFallback = s.StaleCacheFallback
	cfg.KeepRevPrefix = s.KeepRevPrefix
	cfg.LogLevel = s.LogLevel
	cfg.LogJSON = s.LogJSON
	if s.MetricsFile != "" {
		cfg.MetricsFile = cfg.ResolvePath(s.MetricsFile)
	}

	// viper replaces a default map wholesale, so file entries are laid over
	// the built-in mapping here. An empty project disables a built-in entry.
	cfg.ManualMapping = make(map[string]string, len(cfg.ManualMapping)+len(s.ManualMapping))
	for repo, project := range domain.DefaultManualMapping() {
		cfg.ManualMapping[domain.NormalizeRepo(repo)] = project
	}
	for repo, project := range s.ManualMapping {
		cfg.ManualMapping[domain.NormalizeRepo(repo)] = strings.TrimSpace(project)
	}
	return cfg
}

func validate(cfg *domain.Config) error {
	positive := []struct {
		key   string
		value int
	}{
		{"max_chain_hops", cfg.MaxChainHops},
		{"lookup_concurrency", cfg.LookupConcurrency},
	}
	for _, p := range positive {
		if p.value < 1 {
			return zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, p.key+" must be at least 1"), "value", p.value)
		}
	}
	if cfg.HookConfigName == "" || strings.ContainsRune(cfg.HookConfigName, filepath.Separator) {
		return zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "hook_config must be a file name"), "value", cfg.HookConfigName)
	}
	if cfg.IncludeToken == "" || cfg.Marker == "" {
		return zerr.Wrap(domain.ErrConfigLoadFailed, "include_token and marker must not be empty")
	}
	return nil
}
