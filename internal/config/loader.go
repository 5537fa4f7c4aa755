package config

import (
	"os"
	"path/filepath"

	"github.com/barokit/baro/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the config file name inside the config directory.
	ConfigFileName = "config.yaml"
	// LogFileName is the log file name inside the data directory.
	LogFileName = "baro.log"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'baro pattern add' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. $BARO_CONFIG_HOME/config.yaml
// 3. ~/.config/baro/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2./3. Config directory (env override or ~/.config/baro)
	path := filepath.Join(Dir(), ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if not
// found. Commands that only read patterns use this so a missing config file
// is not an error.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults seeds viper with the values merged into partial config files.
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentConfigVersion)
	v.SetDefault("defaults.interval_ms", 1000)
	v.SetDefault("defaults.capacity", 200)
	v.SetDefault("defaults.layout", "auto")
	v.SetDefault("defaults.frame_rate", 30)
	v.SetDefault("defaults.bar_width", 1)
	v.SetDefault("defaults.bar_gap", 0)
	v.SetDefault("defaults.group_gap", 1)
	v.SetDefault("defaults.max", 0)
}
