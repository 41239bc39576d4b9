package config

import "os"

// Config holds host-process configuration.
type Config struct {
	// StorePath is the shared preferences database, placed under the
	// directory both the app and the extension can reach.
	StorePath string

	// RelayAddr is where the change relay listens for the extension.
	RelayAddr string
}

// Load returns the configuration from environment variables
func Load() Config {
	return Config{
		StorePath: getEnv("SETTINGS_DB", "settings.db"),
		RelayAddr: getEnv("RELAY_ADDR", "127.0.0.1:9351"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
