package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config - runtime settings read from the environment.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json" env-description:"json or text"`
}

// Load - reads the configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// MustLoad - like Load, but panics on error.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}
