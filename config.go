package main

import (
	"fmt"
	"os"
)

type Config struct {
	Port                 string
	Env                  string
	AllowedOrigins       string
	ServiceAccountKeyB64 string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8084"),
		Env:                  getEnv("ENV", "development"),
		AllowedOrigins:       os.Getenv("ALLOWED_ORIGINS"),
		ServiceAccountKeyB64: os.Getenv("SERVICE_ACCOUNT_KEY_BASE64"),
	}

	if cfg.ServiceAccountKeyB64 == "" {
		return nil, fmt.Errorf("SERVICE_ACCOUNT_KEY_BASE64 is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
