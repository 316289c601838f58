package config

import "fmt"

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host     string `env:"CHATR_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"CHATR_PG_PORT" env-default:"5432"`
	Database string `env:"CHATR_PG_DATABASE" env-default:"chatr_db"`
	User     string `env:"CHATR_PG_USER" env-default:"chatr"`
	Password string `env:"CHATR_PG_PASSWORD" env-default:"pwd"`
}

// ToDatabaseURL converts the config to a PostgreSQL connection URL.
func (d DatabaseConfig) ToDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Database)
}
