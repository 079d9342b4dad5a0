// internal/config/config.go
package config

import (
    "log"
    "os"

    "github.com/joho/godotenv"
)

// Load reads .env if present. Missing file is not an error, OS env wins.
func Load() {
    if err := godotenv.Load(); err != nil {
        log.Println("⚠️ No .env file found, relying on OS environment variables")
    }
}

// Get returns the env var value or a fallback when unset.
func Get(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}
