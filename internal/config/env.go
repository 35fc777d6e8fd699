package config

import "time"

// appEnv is the raw environment shape parsed by caarlos0/env.
type appEnv struct {
	Port                string        `env:"PORT" envDefault:"8000"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	DatabaseName        string        `env:"DATABASE_NAME"`
	StoreConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT" envDefault:"10s"`
	StoreTimeout        time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	MaxListLimit        int64         `env:"MAX_LIST_LIMIT" envDefault:"0"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON             bool          `env:"LOG_JSON" envDefault:"false"`
	GinMode             string        `env:"GIN_MODE" envDefault:"release"`
}
