package config

import "time"

const (
	envConfigFile   = "CONFIG_FILE"
	envEnvFile      = "ENV_FILE"
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envPlayersURL   = "PLAYERS_API_URL"
	envPlayersRate  = "PLAYERS_API_MIN_INTERVAL"
	envPlayersRetry = "PLAYERS_API_RETRIES"
	envStorage      = "STORAGE_DRIVER"
	envStoragePath  = "STORAGE_PATH"
	envRedisAddr    = "REDIS_ADDR"
	envFavoritesKey = "FAVORITES_KEY"
	envChatAPIKey   = "GEMINI_API_KEY"
	envChatBaseURL  = "GEMINI_BASE_URL"
	envChatModel    = "GEMINI_MODEL"
	envChatRate     = "CHAT_RATE_PER_MINUTE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultEnvFile = ".env"
	defaultPort    = "4000"
	// Players change rarely; a slow refresh keeps the upstream mock API happy.
	defaultPollInterval = 2 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultRetries      = 3
	defaultStorage      = "file"
	defaultStoragePath  = "data/storage"
	defaultRedisAddr    = "localhost:6379"
	defaultFavoritesKey = "favorites"
	defaultChatBaseURL  = "https://generativelanguage.googleapis.com/v1"
	defaultChatModel    = "gemini-1.5-flash"
	defaultChatRate     = 15
	defaultMetricsPort  = "9090"
	defaultServiceName  = "football-players-service"
)
