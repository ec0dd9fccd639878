package config

import (
	"errors"
	"os"
)

// Config holds service-level configuration. Database settings live in
// internal/db; AWS credentials and region come from the standard SDK env.
type Config struct {
	Port        string
	LogLevel    string
	MetricsAddr string

	// Source object store (S3 bucket, also receives processed results).
	SourceBucket string
	ResultsKey   string

	// Destination object store (Azure Blob Storage).
	AzureConnectionString string
	AzureContainer        string
}

// FromEnv loads configuration from environment variables with defaults.
func FromEnv() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),

		SourceBucket: os.Getenv("S3_BUCKET"),
		ResultsKey:   getEnv("RESULTS_KEY", "insurance_data.json"),

		AzureConnectionString: os.Getenv("AZURE_STORAGE_CONNECTION_STRING"),
		AzureContainer:        os.Getenv("AZURE_CONTAINER"),
	}
}

// Validate checks that every externally supplied collaborator is configured.
func (c Config) Validate() error {
	if c.SourceBucket == "" {
		return errors.New("S3_BUCKET is required")
	}
	if c.AzureConnectionString == "" {
		return errors.New("AZURE_STORAGE_CONNECTION_STRING is required")
	}
	if c.AzureContainer == "" {
		return errors.New("AZURE_CONTAINER is required")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
