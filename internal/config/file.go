package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional TOML config file.
type fileConfig struct {
	Server struct {
		Port         string `toml:"port"`
		PollInterval string `toml:"poll_interval"`
		Provider     string `toml:"provider"`
	} `toml:"server"`
	Players struct {
		BaseURL     string `toml:"base_url"`
		MinInterval string `toml:"min_interval"`
		Retries     int    `toml:"retries"`
	} `toml:"players"`
	Storage struct {
		Driver       string `toml:"driver"`
		Path         string `toml:"path"`
		RedisAddr    string `toml:"redis_addr"`
		FavoritesKey string `toml:"favorites_key"`
	} `toml:"storage"`
	Chat struct {
		BaseURL       string `toml:"base_url"`
		Model         string `toml:"model"`
		RatePerMinute int    `toml:"rate_per_minute"`
	} `toml:"chat"`
	Metrics struct {
		Enabled      *bool  `toml:"enabled"`
		Port         string `toml:"port"`
		ServiceName  string `toml:"service_name"`
		OtlpEndpoint string `toml:"otlp_endpoint"`
	} `toml:"metrics"`
}

func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return cfg, nil
}

func fileDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
