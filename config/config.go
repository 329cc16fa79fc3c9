package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// General
	Marketplace   string
	RespectRobots bool
	DelayProfile  string // "cautious", "normal", "aggressive"

	// Fetching
	APIBaseURL  string
	HTTPRetries int
	Headless    bool

	// Rate limiting
	RatePerSecond float64
	RateBurst     int

	// Batch runs
	Workers int

	// HTTP server
	HTTPPort string
	APIKey   string

	// Proxy
	ProxyFile string // file with one proxy URL per line
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Marketplace:   "shopee",
		RespectRobots: false,
		DelayProfile:  "normal",
		RatePerSecond: 2.0,
		RateBurst:     3,
		Workers:       4,
		HTTPPort:      "8080",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("SHOPEE_TRACK_MARKETPLACE"); v != "" {
		c.Marketplace = v
	}
	if v := os.Getenv("SHOPEE_TRACK_DELAY_PROFILE"); v != "" {
		c.DelayProfile = v
	}
	if v := os.Getenv("SHOPEE_TRACK_API_BASE"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("SHOPEE_TRACK_HTTP_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HTTPRetries = n
		}
	}
	if v := os.Getenv("SHOPEE_TRACK_HEADLESS"); v == "true" {
		c.Headless = true
	}
	if v := os.Getenv("SHOPEE_TRACK_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("SHOPEE_TRACK_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("SHOPEE_TRACK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv("SHOPEE_TRACK_PROXIES"); v != "" {
		c.ProxyFile = v
	}
	if v := os.Getenv("SHOPEE_TRACK_RESPECT_ROBOTS"); v == "true" {
		c.RespectRobots = true
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("SHOPEE_TRACK_API_KEY"); v != "" {
		c.APIKey = v
	}
}
