package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	MapsAPIKey  string
	StorageDir  string
	RedisAddr   string
	PostgresDSN string
	AppEnv      string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		MapsAPIKey:  os.Getenv("MAPS_API_KEY"),
		StorageDir:  os.Getenv("STORAGE_DIR"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		AppEnv:      os.Getenv("APP_ENV"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080"
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = ".clickmart"
	}

	return cfg
}
