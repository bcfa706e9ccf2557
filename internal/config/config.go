// Package config loads react-gen's TOML configuration with built-in
// defaults. A missing config file is not an error; every field has a default
// that matches the conventional React project layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up in the project root.
const FileName = "react-gen.toml"

// Config is the complete react-gen configuration.
type Config struct {
	Scan     ScanConfig     `toml:"scan"`
	Cache    CacheConfig    `toml:"cache"`
	Generate GenerateConfig `toml:"generate"`
}

// ScanConfig controls file discovery.
type ScanConfig struct {
	// Roots are the subtree prefixes scanned below the project root.
	Roots []string `toml:"roots"`
	// Exclude names directories skipped at any depth.
	Exclude []string `toml:"exclude"`
}

// CacheConfig controls the persisted index document.
type CacheConfig struct {
	// Path is relative to the project root unless absolute.
	Path string `toml:"path"`
	// StalenessMinutes is how old a cached index may be before a rescan.
	StalenessMinutes int `toml:"staleness_minutes"`
}

// GenerateConfig controls the generation endpoint and history store.
type GenerateConfig struct {
	BaseURL     string `toml:"base_url"`
	Model       string `toml:"model"`
	TimeoutSecs int    `toml:"timeout_secs"`
	HistoryPath string `toml:"history_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{},
		Cache: CacheConfig{
			Path:             filepath.Join(".react-gen", "index.json"),
			StalenessMinutes: 5,
		},
		Generate: GenerateConfig{
			BaseURL:     "http://127.0.0.1:11434",
			Model:       "qwen2.5-coder:7b",
			TimeoutSecs: 60,
			HistoryPath: filepath.Join(".react-gen", "history.db"),
		},
	}
}

// Load reads the config file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadProject loads react-gen.toml from the project root when present,
// falling back to the defaults when it is not.
func LoadProject(projectRoot string) (*Config, error) {
	path := filepath.Join(projectRoot, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	if c.Cache.StalenessMinutes < 0 {
		return fmt.Errorf("cache.staleness_minutes must not be negative")
	}
	if c.Generate.TimeoutSecs < 0 {
		return fmt.Errorf("generate.timeout_secs must not be negative")
	}
	return nil
}

// Staleness returns the cache staleness window as a duration.
func (c *Config) Staleness() time.Duration {
	return time.Duration(c.Cache.StalenessMinutes) * time.Minute
}

// Timeout returns the generation request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Generate.TimeoutSecs) * time.Second
}

// CachePath resolves the cache path against the project root.
func (c *Config) CachePath(projectRoot string) string {
	if filepath.IsAbs(c.Cache.Path) {
		return c.Cache.Path
	}
	return filepath.Join(projectRoot, c.Cache.Path)
}

// HistoryPath resolves the history database path against the project root.
func (c *Config) HistoryPath(projectRoot string) string {
	if filepath.IsAbs(c.Generate.HistoryPath) {
		return c.Generate.HistoryPath
	}
	return filepath.Join(projectRoot, c.Generate.HistoryPath)
}
