package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       string
	ReductionFactor float64 // default confidence reduction for restored points
}

// Load reads configuration from the environment, with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/poses/references.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	factor := 0.7
	if v := os.Getenv("CONFIDENCE_REDUCTION_FACTOR"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			factor = parsed
		}
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		JWTSecret:       jwtSecret,
		ReductionFactor: factor,
	}
}
