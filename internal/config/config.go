package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BackendURL  string
	Environment string
	LogDir      string
	LogMaxFiles int
	// HTTP client behavior
	HTTPTimeout time.Duration
	// Knowledge point pagination
	KnowledgePointPageSize int
	// Debug flags
	Debug bool // Enables DEBUG level logging
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		BackendURL:             getEnv("BACKEND_URL", "http://127.0.0.1:8000"),
		Environment:            env,
		LogDir:                 getEnv("LOG_DIR", defaultLogDir()),
		LogMaxFiles:            getEnvInt("LOG_MAX_FILES", 10),
		HTTPTimeout:            getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		KnowledgePointPageSize: getEnvInt("KP_PAGE_SIZE", DefaultKnowledgePointPageSize),
		// Debug defaults to true outside prod
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// defaultLogDir places logs under the user cache dir; falls back to a
// relative directory when the platform has none.
func defaultLogDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "logs"
	}
	return base + string(os.PathSeparator) + "keystone"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
