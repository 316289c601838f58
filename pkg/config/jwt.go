package config

import "time"

// JWTConfig holds token signing configuration. Tokens default to a 14 day
// lifetime.
type JWTConfig struct {
	Secret      string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	TokenExpiry string `env:"JWT_TOKEN_EXPIRY" env-default:"336h"`
	Issuer      string `env:"JWT_ISSUER" env-default:"chatr"`
}

// ParseTokenExpiry parses the token expiry duration.
func (j JWTConfig) ParseTokenExpiry() (time.Duration, error) {
	return time.ParseDuration(j.TokenExpiry)
}
