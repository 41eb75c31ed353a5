package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config — настройки сервиса из переменных окружения
type Config struct {
	DatabaseURL string
	// SessionSecret зарезервирован под подпись сессионных cookie
	SessionSecret string
	ServerAddress string
	Env           string
	LogLevel      string
}

// Load читает .env (если есть) и переменные окружения.
// Отсутствие DATABASE_URL — фатальная ошибка старта.
func Load() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		ServerAddress: getEnv("SERVER_ADDRESS", "0.0.0.0:8080"),
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL env variable is not set")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET env variable is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
