package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime configuration, loaded once at startup and passed
// into handlers and services. Components never read the environment directly.
type Config struct {
	ServerPort   string
	APIKey       string // shared secret expected in X-API-Key
	FMCSAAPIKey  string // webKey for the FMCSA QC service, optional
	FMCSABaseURL string
	LoadsFile    string
	CallsFile    string
	LogLevel     string
}

// FMCSATimeout bounds the single outbound registry call. On timeout the
// verification completes as not-verified rather than hanging the request.
const FMCSATimeout = 6 * time.Second

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using system environment variables")
	}

	return &Config{
		ServerPort:   getEnv("PORT", "5160"),
		APIKey:       getEnv("API_KEY", "your-secret-api-key-here"),
		FMCSAAPIKey:  getEnv("FMCSA_API_KEY", ""),
		FMCSABaseURL: getEnv("FMCSA_BASE_URL", "https://mobile.fmcsa.dot.gov/qc/services/carriers"),
		LoadsFile:    getEnv("LOADS_FILE", "loads.json"),
		CallsFile:    getEnv("CALLS_DB_FILE", "calls_database.json"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// ParseLogLevel maps the configured level onto a logrus level, defaulting to
// info on unknown values.
func (c *Config) ParseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid LOG_LEVEL value: %s, using info", c.LogLevel)
		return logrus.InfoLevel
	}
	return level
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
