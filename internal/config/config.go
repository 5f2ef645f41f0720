// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvAPIURL      = "GHPROFILE_API_URL"
	EnvAvatarWidth = "GHPROFILE_AVATAR_WIDTH"
)

const (
	defaultAPIURL      = "https://api.github.com/"
	defaultAvatarWidth = 32
)

// Config holds application configuration.
type Config struct {
	// APIURL is the GitHub REST base URL.
	APIURL string
	// AvatarWidth is the avatar art width in columns; 0 hides the avatar.
	AvatarWidth int
}

// Load loads configuration from environment variables. Variables found in
// envFiles (default ".env") are applied first without overriding the
// environment; missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	width := defaultAvatarWidth
	if s := os.Getenv(EnvAvatarWidth); s != "" {
		w, err := strconv.Atoi(s)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a non-negative integer", EnvAvatarWidth, s)
		}
		width = w
	}

	return &Config{
		APIURL:      getEnvOrDefault(EnvAPIURL, defaultAPIURL),
		AvatarWidth: width,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
