package config

import "os"

// Config holds environment-driven configuration for the content API, the
// payment relay and the storefront client.
type Config struct {
	APIAddr     string
	PaymentAddr string

	DatabaseURL string

	StripeSecretKey string
	StripePublicKey string

	// Base URLs the storefront client talks to.
	APIBaseURL     string
	PaymentBaseURL string

	JWTSecret string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		APIAddr:         getEnv("API_ADDR", ":1337"),
		PaymentAddr:     getEnv("PAYMENT_ADDR", ":4242"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripePublicKey: os.Getenv("STRIPE_PUBLIC_KEY"),
		APIBaseURL:      getEnv("API_URL", "http://localhost:1337"),
		PaymentBaseURL:  getEnv("PAYMENT_API_URL", "http://localhost:4242"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
