// Package config provides configuration management for speclint using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/speclint/internal/errors"
	"github.com/thoreinstein/speclint/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides (SPECLINT_FORMAT, ...).
const EnvPrefix = "SPECLINT"

// Output formats accepted in the format key.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version       int      `mapstructure:"version" yaml:"version"`
	Format        string   `mapstructure:"format" yaml:"format"`
	Workers       int      `mapstructure:"workers" yaml:"workers"`
	DisabledRules []string `mapstructure:"disabled_rules" yaml:"disabled_rules"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: 1,
		Format:  FormatText,
		Workers: 1,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName(paths.ConfigFileName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	for _, p := range paths.ConfigSearchPaths() {
		viper.AddConfigPath(p)
	}

	// Environment variable support
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	// Defaults
	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("format", def.Format)
	viper.SetDefault("workers", def.Workers)
	viper.SetDefault("disabled_rules", []string{})
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
// The result is validated; failures wrap ErrInvalidConfig.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(append([]error{errors.ErrInvalidConfig}, errs...)...), "validating config")
	}

	return &cfg, nil
}

// ConfigFileUsed returns the path of the file Load read, or "" when the
// defaults were used.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
