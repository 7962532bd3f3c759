package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Ecwid app credentials
	EcwidClientID     string
	EcwidClientSecret string

	// Base URL of the Ecwid REST API (overridable for tests)
	EcwidAPIBase string

	// Sync
	SyncIntervalMinutes int

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		DatabaseURL:         getEnv("DATABASE_URL", "sqlite://recommender.db"),
		KafkaBrokers:        getEnv("KAFKA_BROKERS", "localhost:9092"),
		APIPort:             getEnv("API_PORT", "8080"),
		APIHost:             getEnv("API_HOST", "0.0.0.0"),
		EcwidClientID:       getEnv("ECWID_CLIENT_ID", ""),
		EcwidClientSecret:   getEnv("ECWID_CLIENT_SECRET", ""),
		EcwidAPIBase:        getEnv("ECWID_API_BASE", "https://app.ecwid.com/api/v3"),
		SyncIntervalMinutes: getEnvAsInt("SYNC_INTERVAL_MINUTES", 60),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
