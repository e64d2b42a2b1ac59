package config

// ChatConfig controls the generative chat API client.
type ChatConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	RatePerMinute int
}

// Enabled reports whether an API key is configured.
func (c ChatConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadChat(file fileConfig) ChatConfig {
	return ChatConfig{
		// The key is only ever read from the environment.
		APIKey:        envOrDefault(envChatAPIKey, ""),
		BaseURL:       envOrDefault(envChatBaseURL, firstNonEmpty(file.Chat.BaseURL, defaultChatBaseURL)),
		Model:         envOrDefault(envChatModel, firstNonEmpty(file.Chat.Model, defaultChatModel)),
		RatePerMinute: intEnvOrDefault(envChatRate, positiveOr(file.Chat.RatePerMinute, defaultChatRate)),
	}
}
