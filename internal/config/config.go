package config

import (
	"net"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env      string         `env:"ENV" envDefault:"development"`
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
}

type ServerConfig struct {
	Port       string `env:"PORT" envDefault:"5050"`
	Host       string `env:"HOST" envDefault:"0.0.0.0"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:".*"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type DatabaseConfig struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"taily"`
}

// IsProduction controls whether diagnostic traces are echoed in error
// responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
