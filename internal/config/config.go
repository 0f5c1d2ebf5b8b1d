package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string
	AppEnv      string

	// Store
	StoreBackend string // memory | file | redis
	DataDir      string
	RedisURL     string

	// Simulated network envelope
	SimulateErrors bool
	LatencyMin     time.Duration
	LatencyMax     time.Duration

	// Debug-only role substitution for manual QA of permission paths
	RoleOverrideEnabled bool

	// Logging
	LogDir string
}

func Load() *Config {
	// Missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		AppEnv:      appEnv,

		StoreBackend: getEnv("STORE_BACKEND", "file"),
		DataDir:      getEnv("DATA_DIR", "data"),
		RedisURL:     getEnv("REDIS_URL", ""),

		SimulateErrors: getBool("SIMULATE_ERRORS", false),
		LatencyMin:     parseDuration(getEnv("LATENCY_MIN", "300ms"), 300*time.Millisecond),
		LatencyMax:     parseDuration(getEnv("LATENCY_MAX", "700ms"), 700*time.Millisecond),

		RoleOverrideEnabled: getBool("ALLOW_ROLE_OVERRIDE", appEnv != "production"),

		LogDir: getEnv("LOG_DIR", "logs"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
