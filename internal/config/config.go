package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port                string
	DatabaseURL         string
	DatabaseName        string
	StoreConnectTimeout time.Duration
	StoreTimeout        time.Duration
	MaxListLimit        int64
	LogLevel            string
	LogJSON             bool
	GinMode             string
}

// DatabaseURLSet reports presence only; the value is never checked.
func (c Config) DatabaseURLSet() bool { return c.DatabaseURL != "" }

func (c Config) DatabaseNameSet() bool { return c.DatabaseName != "" }

// StoreConfigured is true when both store variables are present.
func (c Config) StoreConfigured() bool {
	return c.DatabaseURLSet() && c.DatabaseNameSet()
}

// Load reads an optional .env file and then the process environment into AppEnv.
func Load(paths ...string) error {
	const op = "config.Load"

	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: load .env: %w", op, err)
	}

	cfg, err := Parse()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	AppEnv = cfg
	return nil
}

// Parse builds a Config from the current environment without touching AppEnv.
func Parse() (Config, error) {
	var raw appEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, err
	}

	// zero disables the cap
	maxLimit := max(raw.MaxListLimit, 0)

	port := strings.TrimSpace(raw.Port)
	if port == "" {
		port = "8000"
	}

	return Config{
		Port:                port,
		DatabaseURL:         strings.TrimSpace(raw.DatabaseURL),
		DatabaseName:        strings.TrimSpace(raw.DatabaseName),
		StoreConnectTimeout: raw.StoreConnectTimeout,
		StoreTimeout:        raw.StoreTimeout,
		MaxListLimit:        maxLimit,
		LogLevel:            strings.ToLower(strings.TrimSpace(raw.LogLevel)),
		LogJSON:             raw.LogJSON,
		GinMode:             ginMode(raw.GinMode),
	}, nil
}

// ginMode maps unknown values to release; gin panics on anything else.
func ginMode(raw string) string {
	switch mode := strings.ToLower(strings.TrimSpace(raw)); mode {
	case "debug", "release", "test":
		return mode
	default:
		return "release"
	}
}
