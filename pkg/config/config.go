// Package config loads notestore settings from a YAML file and NOTESTORE_*
// environment variables.
//
// Precedence, highest first: environment, config file, defaults.
//
//	logging:
//	  level: info
//	  format: text
//	storage:
//	  capability_store: badger
//	  sandbox_dir: ~/.local/share/notestore/origin
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// AppName names the config and data directories.
const AppName = "notestore"

// Config is the full notestore configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
}

// LoggingConfig controls the slog handler built by the CLI.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is stderr, stdout or a file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// StorageConfig selects where capabilities and the sandbox live.
type StorageConfig struct {
	// CapabilityStore is "badger" (persistent) or "memory".
	CapabilityStore string `mapstructure:"capability_store" validate:"required,oneof=badger memory" yaml:"capability_store"`
	CapabilityKey   string `mapstructure:"capability_key" validate:"required" yaml:"capability_key"`
	CapabilityDir   string `mapstructure:"capability_dir" validate:"required_if=CapabilityStore badger" yaml:"capability_dir"`

	SandboxDir      string `mapstructure:"sandbox_dir" validate:"required_unless=SandboxInMemory true" yaml:"sandbox_dir"`
	SandboxInMemory bool   `mapstructure:"sandbox_in_memory" yaml:"sandbox_in_memory"`

	ReadConcurrency int `mapstructure:"read_concurrency" validate:"gte=1,lte=1024" yaml:"read_concurrency"`

	// AutoGrant skips the permission prompt on reconnect.
	AutoGrant bool `mapstructure:"auto_grant" yaml:"auto_grant"`
}

// keys lists every setting so that environment variables are honored even
// when no config file exists.
var keys = []string{
	"logging.level",
	"logging.format",
	"logging.output",
	"storage.capability_store",
	"storage.capability_key",
	"storage.capability_dir",
	"storage.sandbox_dir",
	"storage.sandbox_in_memory",
	"storage.read_concurrency",
	"storage.auto_grant",
}

// Load reads configPath (or config.yaml in the default config directory when
// empty), applies defaults and validates the result. A missing default file
// is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	if err := setupViper(v, configPath); err != nil {
		return nil, err
	}

	if _, err := readConfigFile(v, configPath != ""); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func setupViper(v *viper.Viper, configPath string) error {
	v.SetEnvPrefix("NOTESTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	return nil
}

// readConfigFile reports whether a file was read. An explicit path that
// does not exist is an error; a missing default file is not.
func readConfigFile(v *viper.Viper, explicit bool) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		if os.IsNotExist(err) && !explicit {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		expandHomeHook(),
	)
}

// expandHomeHook turns a leading "~/" into the user's home directory.
func expandHomeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		return expandHome(data.(string)), nil
	}
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// ConfigDir returns $XDG_CONFIG_HOME/notestore or ~/.config/notestore.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", AppName)
}

// DataDir returns $XDG_DATA_HOME/notestore or ~/.local/share/notestore.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DefaultConfigPath is where Load looks when no path is given.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
