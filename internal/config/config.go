package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	IdentityAPIKey  string
	IdentityBaseURL string

	TokenSecret string
	TokenExpiry time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	tokenExpiry, err := time.ParseDuration(getEnv("TOKEN_EXPIRY", "1h"))
	if err != nil {
		tokenExpiry = time.Hour
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		IdentityAPIKey:  getEnv("IDENTITY_API_KEY", ""),
		IdentityBaseURL: getEnv("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com/v1"),

		// Only the local identity provider uses the token secret; it may
		// stay unset when IDENTITY_API_KEY is configured.
		TokenSecret: getEnv("TOKEN_SECRET", ""),
		TokenExpiry: tokenExpiry,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
