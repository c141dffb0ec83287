// Package config loads settings for the dnd command from defaults, an optional
// YAML file, DND_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-dnd/internal/geom"
)

// EnvPrefix prefixes every environment variable the command reads.
const EnvPrefix = "DND"

// Config holds the full command configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Demo   DemoConfig   `mapstructure:"demo" yaml:"demo"`
	Replay ReplayConfig `mapstructure:"replay" yaml:"replay"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // "console" or "json"
	// File receives JSON logs in addition to the console when set.
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
}

// DemoConfig shapes the lists of the interactive demo.
type DemoConfig struct {
	Axis     string `mapstructure:"axis" yaml:"axis"`
	Lists    int    `mapstructure:"lists" yaml:"lists"`
	Items    int    `mapstructure:"items" yaml:"items"`
	ItemSize int    `mapstructure:"item_size" yaml:"item_size"`
	Gap      int    `mapstructure:"gap" yaml:"gap"`
	Combine  bool   `mapstructure:"combine" yaml:"combine"`
}

// ReplayConfig controls scenario replay output.
type ReplayConfig struct {
	JSON bool `mapstructure:"json" yaml:"json"`
	// Parallel caps how many scenario files replay at once.
	Parallel int `mapstructure:"parallel" yaml:"parallel"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)

	v.SetDefault("demo.axis", "vertical")
	v.SetDefault("demo.lists", 2)
	v.SetDefault("demo.items", 5)
	v.SetDefault("demo.item_size", 3)
	v.SetDefault("demo.gap", 1)
	v.SetDefault("demo.combine", false)

	v.SetDefault("replay.json", false)
	v.SetDefault("replay.parallel", 4)
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dnd", "config.yaml"), nil
}

// Load reads configuration into v and returns it.
// An explicit path must exist; without one the per-user file is optional.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to expand config path %q: %w", path, err)
		}
		v.SetConfigFile(expanded)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			// viper only reports ConfigFileNotFoundError when searching paths;
			// an explicit file that is missing surfaces as fs.ErrNotExist.
			missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
			if explicit || !missing {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges the command depends on.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if _, ok := geom.ParseDirection(c.Demo.Axis); !ok {
		return fmt.Errorf("demo.axis must be vertical or horizontal, got %q", c.Demo.Axis)
	}
	if c.Demo.Lists < 1 || c.Demo.Items < 1 {
		return fmt.Errorf("demo needs at least one list with one item")
	}
	if c.Demo.ItemSize < 1 || c.Demo.Gap < 0 {
		return fmt.Errorf("demo.item_size must be positive and demo.gap not negative")
	}
	if c.Replay.Parallel < 1 {
		return fmt.Errorf("replay.parallel must be at least 1")
	}
	return nil
}
