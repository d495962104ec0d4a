package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8080"
	defaultDatabaseURL  = "autoloc.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "24h"
	defaultUploadDir    = "./uploads"
	defaultStaticBase   = "/static/uploads"
)

// Config is the process-wide runtime configuration, read once at
// startup and passed down explicitly. There is no global state.
type Config struct {
	AppEnv       string
	Addr         string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration

	// HERE geocoding proxy; the key never leaves the server.
	HereAPIKey string

	// Cloudinary image hosting. Empty CloudName selects the local-disk
	// photo store.
	CloudinaryCloudName    string
	CloudinaryUploadPreset string

	UploadDir  string
	StaticBase string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.HereAPIKey = strings.TrimSpace(os.Getenv("HERE_API_KEY"))
	cfg.CloudinaryCloudName = strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME"))
	cfg.CloudinaryUploadPreset = strings.TrimSpace(os.Getenv("CLOUDINARY_UPLOAD_PRESET"))

	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.StaticBase = getEnv("STATIC_BASE", defaultStaticBase)

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
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
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
