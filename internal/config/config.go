package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port        string
	PostgresDSN string
	JWTSecret   string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "3000"),
		PostgresDSN: getenv("POSTGRES_DSN", ""),
		JWTSecret:   getenv("JWT_SECRET", ""),
		CORSOrigins: getenv("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
