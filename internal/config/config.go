package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the dashboard server.
type Config struct {
	// HTTP bind settings
	BindAddr         string
	PortCandidates   []string
	PortAutoFallback bool

	// Logging
	LogLevel string
	LogFile  string

	// Display
	Currency string

	// Mock feed behavior
	FeedLatencyMS int

	// Optional background refresh (cron spec with seconds; empty disables)
	AutoRefreshCron string
}

// Load reads configuration from environment variables and optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	cfg := &Config{
		BindAddr: getEnvOrDefault("DASHBOARD_BIND_ADDR", "127.0.0.1:8287"),
		PortCandidates: getEnvListOrDefault("DASHBOARD_PORT_CANDIDATES", []string{
			"127.0.0.1:8287", "127.0.0.1:8288", "127.0.0.1:8289",
		}),
		PortAutoFallback: getEnvBoolOrDefault("DASHBOARD_PORT_AUTO_FALLBACK", true),
		LogLevel:         strings.ToLower(getEnvOrDefault("DASHBOARD_LOG_LEVEL", "info")),
		LogFile:          getEnvOrDefault("DASHBOARD_LOG_FILE", "logs/dashboard.log"),
		Currency:         strings.ToUpper(getEnvOrDefault("DASHBOARD_CURRENCY", "USD")),
		FeedLatencyMS:    getEnvIntOrDefault("DASHBOARD_FEED_LATENCY_MS", 200),
		AutoRefreshCron:  getEnvOrDefault("DASHBOARD_AUTO_REFRESH_CRON", ""),
	}
	if cfg.FeedLatencyMS < 0 {
		cfg.FeedLatencyMS = 0
	}

	return cfg, nil
}

// FeedLatency returns the simulated feed round-trip as a duration.
func (c *Config) FeedLatency() time.Duration {
	return time.Duration(c.FeedLatencyMS) * time.Millisecond
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
