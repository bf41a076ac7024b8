package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Sampler.PairsPerEpoch != 1000000 {
		t.Errorf("Expected PairsPerEpoch 1000000, got %d", cfg.Sampler.PairsPerEpoch)
	}

	if cfg.Data.WhiteWinsPath == "" {
		t.Error("White wins path not set")
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := DefaultConfig()

	// Valid config should pass
	if err := cfg.Validate(); err != nil {
		t.Errorf("Valid config failed validation: %v", err)
	}

	// Test invalid pairs per epoch
	cfg.Sampler.PairsPerEpoch = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for invalid pairs_per_epoch")
	}
	cfg.Sampler.PairsPerEpoch = 1000

	// Test invalid batch size
	cfg.Sampler.BatchSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for invalid batch size")
	}
	cfg.Sampler.BatchSize = 32

	// Test invalid min ply
	cfg.Data.MinPly = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for negative min_ply")
	}
	cfg.Data.MinPly = 0

	// Test empty corpus path
	cfg.Data.WhiteWinsPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty corpus path")
	}
}

func TestConfigSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.json")

	// Create and save config
	cfg := DefaultConfig()
	cfg.Sampler.Seed = 99

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Check file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// Load config
	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Sampler.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", loaded.Sampler.Seed)
	}
}

func TestLoadOrDefault(t *testing.T) {
	// Test with non-existent file
	cfg := LoadOrDefault("nonexistent.json")
	if cfg == nil {
		t.Fatal("LoadOrDefault returned nil")
	}

	if cfg.Sampler.PairsPerEpoch != DefaultConfig().Sampler.PairsPerEpoch {
		t.Error("LoadOrDefault did not return default config")
	}

	// Test with existing file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testCfg := DefaultConfig()
	testCfg.Sampler.Seed = 1234
	testCfg.Save(configPath)

	loaded := LoadOrDefault(configPath)
	if loaded.Sampler.Seed != 1234 {
		t.Error("LoadOrDefault did not load existing config")
	}
}

func TestEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Data.WhiteWinsPath = filepath.Join(tmpDir, "corpora", "white_wins.txt")
	cfg.Data.WhiteLossesPath = filepath.Join(tmpDir, "corpora", "white_losses.txt")
	cfg.Data.StorePath = filepath.Join(tmpDir, "db", "positions.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("Failed to ensure directories: %v", err)
	}

	// Check directories were created
	dirs := []string{
		filepath.Join(tmpDir, "corpora"),
		filepath.Join(tmpDir, "db"),
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("Directory was not created: %s", dir)
		}
	}
}
