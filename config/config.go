// Package config provides configuration management for the storefront service.
package config

import (
	"os"
)

// Config holds all configuration for the storefront service.
type Config struct {
	// Server settings
	Port   string
	AppURL string

	// Database settings
	MongoURI      string
	MongoDatabase string

	// Auth settings
	JWTSecret string

	// Mail settings
	MailProvider  string // "postmark" or "sendgrid"
	PostmarkToken string
	SendGridKey   string
	MailSender    string

	// Payment settings
	StripeKey string
	Currency  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8000"),
		AppURL: getEnv("APP_URL", "http://localhost:8000"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "storefront"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		MailProvider:  getEnv("MAIL_PROVIDER", "postmark"),
		PostmarkToken: getEnv("POSTMARK_API_TOKEN", ""),
		SendGridKey:   getEnv("SENDGRID_API_KEY", ""),
		MailSender:    getEnv("EMAIL_SENDER", "support@storefront.local"),

		StripeKey: getEnv("STRIPE_SECRET_KEY", ""),
		Currency:  getEnv("CURRENCY", "usd"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
