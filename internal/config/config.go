package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultRecentLimit = 5
	defaultUnpaidLimit = 3
	defaultTimezone    = "Asia/Manila"
)

type Config struct {
	ProjectID   string
	Region      string
	LogLevel    string
	Port        string
	RecentLimit int
	UnpaidLimit int
	Location    *time.Location
}

// New builds the config from the environment. A .env file in the
// working directory is loaded first if present; real env vars win.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:   os.Getenv("PROJECTID"),
		Region:      os.Getenv("REGION"),
		LogLevel:    os.Getenv("LOGLEVEL"),
		Port:        getString("PORT", defaultPort),
		RecentLimit: getInt("RECENTLIMIT", defaultRecentLimit),
		UnpaidLimit: getInt("UNPAIDLIMIT", defaultUnpaidLimit),
		Location:    getLocation(os.Getenv("TIMEZONE")),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getLocation(name string) *time.Location {
	if name == "" {
		name = defaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
