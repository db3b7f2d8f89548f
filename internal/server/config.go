package server

import "time"

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Performance settings
	RateLimit int // Requests per minute per IP (0 to disable)
	CacheSize int
	CacheTTL  time.Duration

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Upstream endpoints
	ImagesURL   string
	APIURL      string
	WebsiteURL  string
	ShieldsURL  string
	ImageCDNURL string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         3001,
		CORSEnabled:  false,
		CORSOrigins:  []string{},
		RateLimit:    0,
		CacheSize:    5000,
		CacheTTL:     10 * time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
