package cli

import (
	"os"
	"time"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Timeout   time.Duration
	Output    string
	Columns   []string
	NoColor   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("DIAMONDSTATS_SERVER", "http://localhost:8080"),
		Timeout:   2 * time.Minute,
		Output:    "text",
		NoColor:   os.Getenv("NO_COLOR") != "",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
