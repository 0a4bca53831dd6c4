package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port               string
	SessionSecret      string
	SessionIdleTimeout time.Duration
	CatalogFile        string
	AllowedOrigins     []string
}

func Load() (*Config, error) {
	idle, err := time.ParseDuration(getEnv("SESSION_IDLE_TIMEOUT", "12h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_IDLE_TIMEOUT: %w", err)
	}

	return &Config{
		Port:               getEnv("PORT", "8081"),
		SessionSecret:      getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		SessionIdleTimeout: idle,
		CatalogFile:        os.Getenv("CATALOG_FILE"),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
