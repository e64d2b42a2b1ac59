package config

// StorageConfig selects the key-value backend used for favorites and chat history.
type StorageConfig struct {
	Driver       string // memory, file, sqlite or redis
	Path         string // directory for file, database file for sqlite
	RedisAddr    string
	FavoritesKey string
}

func loadStorage(file fileConfig) StorageConfig {
	return StorageConfig{
		Driver:       envOrDefault(envStorage, firstNonEmpty(file.Storage.Driver, defaultStorage)),
		Path:         envOrDefault(envStoragePath, firstNonEmpty(file.Storage.Path, defaultStoragePath)),
		RedisAddr:    envOrDefault(envRedisAddr, firstNonEmpty(file.Storage.RedisAddr, defaultRedisAddr)),
		FavoritesKey: envOrDefault(envFavoritesKey, firstNonEmpty(file.Storage.FavoritesKey, defaultFavoritesKey)),
	}
}
