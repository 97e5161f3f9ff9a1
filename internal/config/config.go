package config

import (
	"log/slog"
	"os"
	"strings"
)

// Store backends for case files.
const (
	StoreFS    = "fs"
	StoreRedis = "redis"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	CaseStore   string // "fs" or "redis"
	DataDir     string // case file directory for the fs store
	RedisURL    string // connection URL for the redis store
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		CaseStore:   strings.ToLower(getEnv("CASE_STORE", StoreFS)),
		DataDir:     getEnv("DATA_DIR", "./data"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
