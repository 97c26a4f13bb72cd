// Package config loads apread settings from a config file or
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for apread. Every field has a
// default, so a missing config file is not an error.
type Config struct {
	// Width is the wrap column for rendered posts
	Width uint `mapstructure:"width"`

	// Timeout bounds each of the four pipeline requests
	Timeout time.Duration `mapstructure:"timeout"`

	// AccessToken, when set, is sent as a bearer token on every
	// fetch, for servers running in authorized-fetch mode
	AccessToken string `mapstructure:"access_token"`
}

// Dir returns the apread config directory, honoring XDG_CONFIG_HOME
func Dir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "apread"), nil
}

// Load reads config.yaml from the given directory, falling back to
// APREAD_* environment variables and built-in defaults.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("APREAD")
	v.AutomaticEnv()

	v.SetDefault("width", 80)
	v.SetDefault("timeout", "30s")
	v.SetDefault("access_token", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Width == 0 {
		config.Width = 80
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return config, nil
}
