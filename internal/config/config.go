// Package config provides configuration loading and structs for moji.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Extract ExtractConfig `yaml:"extract"`
	Analyze AnalyzeConfig `yaml:"analyze"`
	Caesar  CaesarConfig  `yaml:"caesar"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ExtractConfig holds text extraction settings.
type ExtractConfig struct {
	// MaxFileSize is the largest file, in bytes, the extractor will read.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// AnalyzeConfig holds word-frequency settings.
type AnalyzeConfig struct {
	// TopWords caps how many rows a frequency report shows. Zero shows all.
	TopWords int `yaml:"top_words"`
}

// CaesarConfig holds cipher settings.
type CaesarConfig struct {
	DefaultShift int `yaml:"default_shift"`
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a Config with all defaults applied, used when no config
// file is installed.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
