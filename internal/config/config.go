package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all configuration for the application, read from environment
// variables. It is loaded once at startup and passed to whatever needs it;
// there is no package-level instance.
type Config struct {
	Port    string
	GinMode string
	// ClientURL is the browser origin allowed by CORS.
	ClientURL string

	FirebaseProjectID                string
	GoogleApplicationCredentials     string
	FirebaseServiceAccountJSONBase64 string
	// FirebaseWebAPIKey is the web API key used for email+password sign-in
	// against the Identity Toolkit endpoint.
	FirebaseWebAPIKey string
	// StorageBucket is the Cloud Storage bucket for uploaded assets.
	StorageBucket string

	// RoleCacheTTL bounds how long a revoked admin role can stay effective.
	RoleCacheTTL time.Duration
	// SeedFile is the static data file read by the seed import.
	SeedFile string
}

// Load reads configuration from the environment and validates required fields.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                             envOr("PORT", "8080"),
		GinMode:                          envOr("GIN_MODE", "debug"),
		ClientURL:                        envOr("CLIENT_URL", "http://localhost:3000"),
		FirebaseProjectID:                os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials:     os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirebaseServiceAccountJSONBase64: os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"),
		FirebaseWebAPIKey:                os.Getenv("FIREBASE_WEB_API_KEY"),
		StorageBucket:                    os.Getenv("STORAGE_BUCKET"),
		RoleCacheTTL:                     5 * time.Minute,
		SeedFile:                         envOr("SEED_FILE", "seed-data.json"),
	}

	if ttl := os.Getenv("ROLE_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, errors.New("ROLE_CACHE_TTL is not a valid duration: " + ttl)
		}
		cfg.RoleCacheTTL = d
	}

	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}
	if cfg.GoogleApplicationCredentials == "" && cfg.FirebaseServiceAccountJSONBase64 == "" {
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is required")
	}
	if cfg.FirebaseWebAPIKey == "" {
		return nil, errors.New("FIREBASE_WEB_API_KEY is required")
	}
	if cfg.StorageBucket == "" {
		return nil, errors.New("STORAGE_BUCKET is required")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
