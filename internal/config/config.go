package config

import "os"

type Config struct {
	// HTTPAddr enables the JSON API when non-empty.
	HTTPAddr string
	// DatabaseURL switches storage to PostgreSQL when non-empty.
	DatabaseURL string
	LogLevel    string
}

func Load() Config {
	return Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "warn"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
