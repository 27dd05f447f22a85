// Package config loads the service configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port         string
	DBPath       string
	JWTSecret    string
	JWTExpiresIn time.Duration

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// Load reads the configuration from the environment with defaults for
// local development. A .env file is honored when present.
func Load() Config {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		DBPath:       getenv("DB_PATH", "data/monet.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: 24 * time.Hour,

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getenv("MAIL_FROM", "noreply@localhost"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "insecure-development-secret"
		log.Warn().Msg("JWT_SECRET is not set, using an insecure development secret")
	}

	if expiresIn := os.Getenv("JWT_EXPIRES_IN"); expiresIn != "" {
		d, err := time.ParseDuration(expiresIn)
		if err != nil {
			log.Warn().Str("JWT_EXPIRES_IN", expiresIn).Msg("cannot parse JWT_EXPIRES_IN, using 24h")
		} else {
			cfg.JWTExpiresIn = d
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
