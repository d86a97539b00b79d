// Package config loads process configuration from the environment and
// chart option files.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/output"
)

// Config holds all configuration for the CLI and the HTTP server.
type Config struct {
	// Logging
	LogLevel string
	LogFile  string

	// HTTP server
	Addr         string
	MaxBodyBytes int

	// HTML output
	ScriptURL      string
	StockScriptURL string
}

// Load reads configuration from environment variables and optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	cfg := &Config{
		LogLevel:       getEnvOrDefault("TABLECHART_LOG_LEVEL", "info"),
		LogFile:        getEnvOrDefault("TABLECHART_LOG_FILE", ""),
		Addr:           getEnvOrDefault("TABLECHART_ADDR", ":8080"),
		MaxBodyBytes:   getEnvIntOrDefault("TABLECHART_MAX_BODY_BYTES", 10*1024*1024),
		ScriptURL:      getEnvOrDefault("TABLECHART_SCRIPT_URL", output.DefaultScriptURL),
		StockScriptURL: getEnvOrDefault("TABLECHART_STOCK_SCRIPT_URL", output.DefaultStockScriptURL),
	}

	return cfg, nil
}

// HTMLOptions returns the HTML output settings.
func (c *Config) HTMLOptions() output.HTMLOptions {
	opts := output.DefaultHTMLOptions()
	opts.ScriptURL = c.ScriptURL
	opts.StockScriptURL = c.StockScriptURL
	return opts
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
