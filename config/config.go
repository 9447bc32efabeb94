package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven configuration for the application.
// Group definitions and the poll interval live in the event file instead
// (see LoadEventFile); the split keeps deploy settings out of the event
// definition that organizers edit.
type Config struct {
	Environment        string
	Port               string
	EventFile          string
	ExportFile         string
	WebDir             string
	CORSAllowedOrigins []string
	Email              EmailConfig
}

// EmailConfig selects and configures the confirmation mailer. With an empty
// or unknown provider the service falls back to a no-op mailer.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
}

// Load loads configuration from environment variables. It attempts to load a
// .env file first unless running in production, where the system environment
// is the only source.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		EventFile:   os.Getenv("EVENT_CONFIG"),
		ExportFile:  os.Getenv("EXPORT_FILE"),
		WebDir:      os.Getenv("WEB_DIR"),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			SESRegion:          os.Getenv("AWS_SES_REGION"),
			SESAccessKeyID:     os.Getenv("AWS_SES_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
		},
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	}

	// Defaults.
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.EventFile == "" {
		cfg.EventFile = "config.json"
	}
	if cfg.ExportFile == "" {
		cfg.ExportFile = "registrations.txt"
	}
	if cfg.WebDir == "" {
		cfg.WebDir = "./web"
	}

	return cfg, nil
}
