package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/hexland/internal/coord"
)

// Config holds all configuration for the application
type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Server ServerConfig `mapstructure:"server"`
	CLI    CLIConfig    `mapstructure:"cli"`
}

// GridConfig selects the one co-ordinate system in use
type GridConfig struct {
	Topology string `mapstructure:"topology"`
}

// ServerConfig holds coordinate lookup server configuration
type ServerConfig struct {
	Host                  string `mapstructure:"host"`
	Port                  int    `mapstructure:"port"`
	LogLevel              string `mapstructure:"log_level"`
	LogFormat             string `mapstructure:"log_format"`
	GracefulShutdownDelay int    `mapstructure:"graceful_shutdown_delay"`
	MaxAdjacentBatch      int    `mapstructure:"max_adjacent_batch"`
}

// CLIConfig holds settings for the one-shot commands
type CLIConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("grid.topology", "square8")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 50061)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "console")
	v.SetDefault("server.graceful_shutdown_delay", 2)
	v.SetDefault("server.max_adjacent_batch", 64)

	v.SetDefault("cli.log_level", "warn")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/hexland")
	}

	v.SetEnvPrefix("HXL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file, explicit or searched for, means defaults
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config.
// The overlay sits next to the base config file, or in the working
// directory when there is none. A missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if base := v.ConfigFileUsed(); base != "" {
		envFile = filepath.Join(filepath.Dir(base), envFile)
	}

	overlay := viper.New()
	overlay.SetConfigFile(envFile)
	if err := overlay.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading environment config %s: %w", envFile, err)
	}
	if err := v.MergeConfigMap(overlay.AllSettings()); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the config file in use, if any
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// Topology resolves the configured co-ordinate system.
func (c *Config) Topology() (coord.CoordSystem, error) {
	return coord.ByName(c.Grid.Topology)
}

// WatchConfig enables hot-reloading of config file. onChange runs after
// the new values validate; invalid edits are reported through onError and
// the previous values stay in place.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}
		*cfg = *next
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if _, err := coord.ByName(c.Grid.Topology); err != nil {
		return fmt.Errorf("grid.topology: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if !logLevels[c.Server.LogLevel] {
		return fmt.Errorf("server.log_level must be one of debug, info, warn, error")
	}
	if c.Server.LogFormat != "console" && c.Server.LogFormat != "json" {
		return fmt.Errorf("server.log_format must be console or json")
	}
	if c.Server.GracefulShutdownDelay < 0 {
		return fmt.Errorf("server.graceful_shutdown_delay must be non-negative")
	}
	if c.Server.MaxAdjacentBatch <= 0 {
		return fmt.Errorf("server.max_adjacent_batch must be positive")
	}

	if !logLevels[c.CLI.LogLevel] {
		return fmt.Errorf("cli.log_level must be one of debug, info, warn, error")
	}

	return nil
}
