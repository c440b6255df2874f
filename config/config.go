package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"os"
)

// Config process settings read from the environment
type Config struct {
	// RatesUrl JSON document exposing rates.USD
	RatesUrl string `env:"RATES_URL" env-default:"https://open.er-api.com/v6/latest/EUR"`

	// HttpAddr listen address of the HTTP server
	HttpAddr string `env:"HTTP_ADDR" env-default:":8080"`

	// LogLevel one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads Config from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading env config: %w", err)
	}
	return &cfg, nil
}

// MustLoad is like Load but exits the process on failure
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}
