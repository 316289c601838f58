package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates every setting the server binary needs.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Email    EmailConfig
	JWT      JWTConfig
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	return cfg, nil
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `env:"CHATR_HOST" env-default:"0.0.0.0"`
	Port uint16 `env:"CHATR_PORT" env-default:"4000"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
