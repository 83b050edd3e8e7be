package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete tool configuration
type Config struct {
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// CacheConfig controls caching of PDF-to-text conversions
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	Pretty  bool `yaml:"pretty" mapstructure:"pretty"`
	Summary bool `yaml:"summary" mapstructure:"summary"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// LLMConfig controls the optional summary layer.
// The LLM never participates in extraction; it only narrates the result.
type LLMConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"`
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"-" mapstructure:"-"`
	BaseURL           string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxTokens         int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	StrictFacts       bool    `yaml:"strict_facts" mapstructure:"strict_facts"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	cacheDir := ".polsched-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".polsched", "cache")
	}

	return &Config{
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose: false,
			Pretty:  true,
			Summary: false,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:          "", // disabled by default
			Model:             "",
			TimeoutSeconds:    30,
			MaxTokens:         1000,
			StrictFacts:       true,
			RequestsPerSecond: 1,
		},
	}
}
