package env

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the process environment if one exists.
// Missing files are not an error; real environment variables win.
func Load() {
	_ = godotenv.Load()
}

// GetEnv returns the value of key, or defaultValue when unset or empty.
func GetEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvDuration returns key parsed as a time.Duration, or defaultValue
// when unset or unparseable.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
