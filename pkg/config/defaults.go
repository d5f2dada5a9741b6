package config

import (
	"path/filepath"
	"strings"

	"github.com/aretw0/notestore/pkg/core"
)

// ApplyDefaults fills zero values. Explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyStorageDefaults(&cfg.Storage)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyStorageDefaults(cfg *StorageConfig) {
	if cfg.CapabilityStore == "" {
		cfg.CapabilityStore = "badger"
	}
	cfg.CapabilityStore = strings.ToLower(cfg.CapabilityStore)

	if cfg.CapabilityKey == "" {
		cfg.CapabilityKey = core.DefaultCapabilityKey
	}
	if cfg.CapabilityDir == "" && cfg.CapabilityStore == "badger" {
		cfg.CapabilityDir = filepath.Join(DataDir(), "capabilities")
	}
	if cfg.SandboxDir == "" && !cfg.SandboxInMemory {
		cfg.SandboxDir = filepath.Join(DataDir(), "origin")
	}
	if cfg.ReadConcurrency == 0 {
		cfg.ReadConcurrency = core.DefaultReadConcurrency
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
