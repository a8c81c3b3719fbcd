package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env when GO_ENV is unset or "development".
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// Config holds the environment-driven settings of the server.
type Config struct {
	GoEnv             string
	Port              int
	DataPath          string
	AllowedOrigins    string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Get reads the configuration from the environment, applying defaults for
// anything unset.
func Get() (*Config, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 3000
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data/universities.json"
	}

	rateLimitRequests, err := strconv.Atoi(os.Getenv("RATE_LIMIT_REQUESTS"))
	if err != nil || rateLimitRequests <= 0 {
		rateLimitRequests = 300
	}

	rateLimitWindow, err := time.ParseDuration(os.Getenv("RATE_LIMIT_WINDOW"))
	if err != nil || rateLimitWindow <= 0 {
		rateLimitWindow = 1 * time.Minute
	}

	return &Config{
		GoEnv:             os.Getenv("GO_ENV"),
		Port:              port,
		DataPath:          dataPath,
		AllowedOrigins:    os.Getenv("ALLOWED_ORIGINS"),
		RateLimitRequests: rateLimitRequests,
		RateLimitWindow:   rateLimitWindow,
	}, nil
}
