package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide CLI flag defaults.
const (
	EnvConfigPath = "SKYFLAP_CONFIG"
	EnvLogLevel   = "SKYFLAP_LOG_LEVEL"
	EnvSeed       = "SKYFLAP_SEED"
)

// LoadEnv reads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are left untouched, and a missing file
// is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return nil
}

// EnvOr returns the value of key, or def when it is unset or empty.
func EnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
