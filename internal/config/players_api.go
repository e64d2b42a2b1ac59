package config

// PlayersAPIConfig controls how we talk to the remote players API.
type PlayersAPIConfig struct {
	BaseURL string
	// MinInterval spaces upstream calls apart; zero disables limiting.
	MinInterval Duration
	Retries     int
}

func loadPlayersAPI(file fileConfig) PlayersAPIConfig {
	return PlayersAPIConfig{
		BaseURL:     envOrDefault(envPlayersURL, file.Players.BaseURL),
		MinInterval: durationEnvOrDefault(envPlayersRate, fileDuration(file.Players.MinInterval, 0)),
		Retries:     intEnvOrDefault(envPlayersRetry, positiveOr(file.Players.Retries, defaultRetries)),
	}
}
