package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DBPath        string
	PayRateFile   string
	LogFormat     string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, ErrNoToken{}
	}
	return &Config{
		TelegramToken: token,
		DBPath:        getenv("DB_PATH", "work-hours.db"),
		PayRateFile:   getenv("PAY_RATE_FILE", "pay_rate.txt"),
		LogFormat:     getenv("LOG_FORMAT", "console"),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN is not set"
}
