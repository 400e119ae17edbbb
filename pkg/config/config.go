package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	DataDir          string
	Environment      string
	PollSeconds      int64
	ResetTokenExpiry int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		PollSeconds:      getEnvAsInt64("NOTIFICATION_POLL_SECONDS", 5),
		ResetTokenExpiry: getEnvAsInt64("RESET_TOKEN_EXPIRY", 15*60), // 15 minutes
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
