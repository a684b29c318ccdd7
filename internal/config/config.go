// Package config centralises configuration parsing for the exercise log service.
package config

import (
	"os"
	"strings"
)

// Config captures runtime configuration values for the service.
type Config struct {
	HTTPAddress   string
	MongoURI      string
	MongoDatabase string
	KafkaBrokers  []string // empty disables event publishing
	LogLevel      string
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	port := getEnv("PORT", "3000")
	return Config{
		HTTPAddress:   getEnv("HTTP_ADDRESS", ":"+port),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "exercise_log"),
		KafkaBrokers:  splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
