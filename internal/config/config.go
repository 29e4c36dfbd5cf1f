// Package config reads the site's settings from the environment. A .env file
// in the working directory is loaded first, so local development does not
// need exported variables.
package config

import (
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// DefaultDSN keeps visit statistics in memory for the life of the process.
const DefaultDSN = "file:elifdev?mode=memory&cache=shared"

// Config holds every runtime setting.
type Config struct {
	Port         string
	GinMode      string
	ContentPath  string
	WatchContent bool
	DatabaseDSN  string
	ResumePath   string

	AdminUsername string
	AdminPassword string
	// AdminDefaults is set when either admin credential fell back to its
	// development value.
	AdminDefaults bool

	LogLevel  string
	LogFormat string

	ReducedMotion bool
}

// Load builds a Config from the environment.
func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		ContentPath:   os.Getenv("PORTFOLIO_CONTENT"),
		WatchContent:  boolenv("PORTFOLIO_WATCH"),
		DatabaseDSN:   getenv("PORTFOLIO_DB", DefaultDSN),
		ResumePath:    os.Getenv("PORTFOLIO_RESUME"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		ReducedMotion: boolenv("REDUCED_MOTION"),
	}

	// Default credentials for development (set both variables in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		cfg.AdminDefaults = true
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		cfg.AdminDefaults = true
	}
	return cfg
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolenv(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
