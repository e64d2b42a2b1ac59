package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	PlayersAPI   PlayersAPIConfig
	Storage      StorageConfig
	Chat         ChatConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file (ENV_FILE) seeds unset variables and an optional TOML file
// (CONFIG_FILE) provides defaults that environment variables override.
func Load() (Config, error) {
	if err := loadDotEnv(envOrDefault(envEnvFile, defaultEnvFile)); err != nil {
		return Config{}, err
	}
	file, err := loadFile(os.Getenv(envConfigFile))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:         envOrDefault(envPort, firstNonEmpty(file.Server.Port, defaultPort)),
		PollInterval: durationEnvOrDefault(envPollInterval, fileDuration(file.Server.PollInterval, defaultPollInterval)),
		Provider:     envOrDefault(envProvider, firstNonEmpty(file.Server.Provider, defaultProvider)),
		PlayersAPI:   loadPlayersAPI(file),
		Storage:      loadStorage(file),
		Chat:         loadChat(file),
		Metrics:      loadMetrics(file),
	}, nil
}

// loadDotEnv never overrides variables already present in the environment.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
