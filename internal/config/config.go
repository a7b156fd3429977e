// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
)

// Defaults for processing caps and caches.
const (
	DefaultMaxSampleBytes  = 10_000_000
	DefaultSampleCacheSize = 128
	DefaultGenWorkers      = 8
)

// Config holds all configuration for the typeforge CLI and MCP server.
type Config struct {
	MaxSampleBytes  int    // TYPEFORGE_MAX_SAMPLE_BYTES, default 10_000_000
	SampleCacheSize int    // TYPEFORGE_SAMPLE_CACHE_SIZE, default 128
	GenWorkers      int    // TYPEFORGE_GEN_WORKERS, default 8
	DefaultRootName string // TYPEFORGE_ROOT_NAME, default "Root"

	// Logging configuration
	LogLevel      string // TYPEFORGE_LOG_LEVEL, default "info"
	LogFile       string // TYPEFORGE_LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // TYPEFORGE_LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // TYPEFORGE_LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // TYPEFORGE_LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // TYPEFORGE_LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		MaxSampleBytes:  getEnvInt("TYPEFORGE_MAX_SAMPLE_BYTES", DefaultMaxSampleBytes),
		SampleCacheSize: getEnvInt("TYPEFORGE_SAMPLE_CACHE_SIZE", DefaultSampleCacheSize),
		GenWorkers:      getEnvInt("TYPEFORGE_GEN_WORKERS", DefaultGenWorkers),
		DefaultRootName: getEnvString("TYPEFORGE_ROOT_NAME", "Root"),

		LogLevel:      getEnvString("TYPEFORGE_LOG_LEVEL", "info"),
		LogFile:       getEnvString("TYPEFORGE_LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("TYPEFORGE_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("TYPEFORGE_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("TYPEFORGE_LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("TYPEFORGE_LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
