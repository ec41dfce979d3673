// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir            string // Base directory for run archives (always absolute)
	LogLevel           string
	Seed               uint64 // RNG seed; 0 means non-deterministic seeding by the caller
	DefaultDemographic string // Cohort preset used when profile data omits one
	MaxTrials          int    // Upper bound on accepted outcome-array length
	DevMode            bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Determine data directory with fallback logic:
	// BEHAVIORAL_DATA_DIR if set, otherwise ./data, always absolute.
	dataDir := getEnv("BEHAVIORAL_DATA_DIR", "")
	if dataDir == "" {
		dataDir = "./data"
	}

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:            absDataDir,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Seed:               getEnvAsUint64("BEHAVIORAL_SEED", 0),
		DefaultDemographic: getEnv("BEHAVIORAL_DEFAULT_DEMOGRAPHIC", "millennial"),
		MaxTrials:          getEnvAsInt("BEHAVIORAL_MAX_TRIALS", 100000),
		DevMode:            getEnvAsBool("DEV_MODE", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.MaxTrials <= 0 {
		return fmt.Errorf("BEHAVIORAL_MAX_TRIALS must be positive, got %d", c.MaxTrials)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
