package config

import (
	"os"
	"time"
)

// DevJWTSecret is only meant for local development. Startup logs a warning
// whenever it is in use; deployments must set JWT_SECRET.
const DevJWTSecret = "dev-secret-change-in-production"

const DefaultTokenExpiry = 7 * 24 * time.Hour

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenExpiry time.Duration
	Email       EmailConfig

	// UsingDevSecret is set when JWT_SECRET was absent and the development
	// fallback is active. Reaching production like this is a deployment error.
	UsingDevSecret bool
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenExpiry: DefaultTokenExpiry,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DevJWTSecret
		cfg.UsingDevSecret = true
	}

	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.TokenExpiry = d
		}
	}

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}
