package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Data    DataConfig    `json:"data"`
	Sampler SamplerConfig `json:"sampler"`
	Logging LoggingConfig `json:"logging"`
}

// DataConfig contains corpus and storage paths
type DataConfig struct {
	WhiteWinsPath   string `json:"white_wins_path"`   // newline-delimited FEN file, games white won
	WhiteLossesPath string `json:"white_losses_path"` // newline-delimited FEN file, games white lost
	StorePath       string `json:"store_path"`        // bbolt database of encoded positions
	MinPly          int    `json:"min_ply"`           // opening plies skipped during corpus building
}

// SamplerConfig contains sampling and batching settings
type SamplerConfig struct {
	Seed          int64 `json:"seed"`
	PairsPerEpoch int   `json:"pairs_per_epoch"`
	BatchSize     int   `json:"batch_size"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level   string `json:"level"`
	Verbose bool   `json:"verbose"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			WhiteWinsPath:   "data/white_wins.txt",
			WhiteLossesPath: "data/white_losses.txt",
			StorePath:       "data/positions.db",
			MinPly:          5,
		},
		Sampler: SamplerConfig{
			Seed:          42,
			PairsPerEpoch: 1000000,
			BatchSize:     256,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Verbose: false,
		},
	}
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads the configuration file, falling back to defaults if
// it does not exist or fails to parse
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Sampler.PairsPerEpoch <= 0 {
		return fmt.Errorf("pairs_per_epoch must be positive, got %d", c.Sampler.PairsPerEpoch)
	}
	if c.Sampler.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.Sampler.BatchSize)
	}
	if c.Data.MinPly < 0 {
		return fmt.Errorf("min_ply must not be negative, got %d", c.Data.MinPly)
	}
	if c.Data.WhiteWinsPath == "" || c.Data.WhiteLossesPath == "" {
		return fmt.Errorf("corpus paths must not be empty")
	}
	return nil
}

// EnsureDirectories creates the parent directories of all configured paths
func (c *Config) EnsureDirectories() error {
	paths := []string{
		c.Data.WhiteWinsPath,
		c.Data.WhiteLossesPath,
		c.Data.StorePath,
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	return nil
}
