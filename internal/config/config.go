package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort        = "8080"
	defaultFlashModel  = "gemini-3-flash-preview"
	defaultProModel    = "gemini-3-pro-preview"
	defaultUploadTick  = "400ms"
	defaultToastBuffer = "50"
)

type Config struct {
	Port             string
	GeminiAPIKey     string
	GeminiFlashModel string
	GeminiProModel   string
	UploadTick       time.Duration
	ToastBuffer      int
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	cfg.GeminiFlashModel = strings.TrimSpace(getEnv("GEMINI_FLASH_MODEL", defaultFlashModel))
	cfg.GeminiProModel = strings.TrimSpace(getEnv("GEMINI_PRO_MODEL", defaultProModel))

	var err error
	cfg.UploadTick, err = parseDurationEnv("UPLOAD_TICK_INTERVAL", defaultUploadTick)
	if err != nil {
		return nil, err
	}
	if cfg.UploadTick <= 0 {
		return nil, fmt.Errorf("UPLOAD_TICK_INTERVAL must be positive, got %s", cfg.UploadTick)
	}

	cfg.ToastBuffer, err = parseIntEnv("TOAST_BUFFER", defaultToastBuffer)
	if err != nil {
		return nil, err
	}
	if cfg.ToastBuffer <= 0 {
		return nil, fmt.Errorf("TOAST_BUFFER must be positive, got %d", cfg.ToastBuffer)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return n, nil
}
