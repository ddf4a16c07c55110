package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Data source
	Data struct {
		// File overrides the bundled chats/messages/effects when set
		File string
	}

	// Logging configuration
	Logging struct {
		File   string
		Level  string
		Format string
	}

	// Voice effect panel defaults
	Effects struct {
		Volume int
		Speed  int
		Pitch  int
	}

	// Terminal behaviour
	UI struct {
		AltScreen bool
	}
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists.
func Load() *Config {
	// Missing .env is the normal case
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Data.File = getEnvString("WORE_DATA_FILE", "")

	cfg.Logging.File = getEnvString("WORE_LOG_FILE", "")
	cfg.Logging.Level = strings.ToLower(getEnvString("WORE_LOG_LEVEL", "info"))
	cfg.Logging.Format = strings.ToLower(getEnvString("WORE_LOG_FORMAT", "text"))

	cfg.Effects.Volume = getEnvInt("WORE_DEFAULT_VOLUME", 80)
	cfg.Effects.Speed = getEnvInt("WORE_DEFAULT_SPEED", 100)
	cfg.Effects.Pitch = getEnvInt("WORE_DEFAULT_PITCH", 100)

	cfg.UI.AltScreen = getEnvBool("WORE_ALT_SCREEN", true)

	return cfg
}

// Helper functions to read environment variables with default values

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
