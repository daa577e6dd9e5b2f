package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env when present. Deployments that inject variables directly have no file.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		GetLogrusInstance().Warn("No .env file found, using process environment")
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s is missing", key)
	}
	return v, nil
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func GetRequestTimeout() time.Duration {
	d, err := time.ParseDuration(os.Getenv("REQUEST_TIMEOUT"))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func GetCorsAllowOrigins() string {
	return getEnv("CORS_ALLOW_ORIGINS", "*")
}
