// Package server provides the HTTP server for the images service.
package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencollective/images/internal/config"
	"github.com/opencollective/images/internal/graph"
	"github.com/opencollective/images/internal/imagecdn"
	"github.com/opencollective/images/internal/server/cache"
	"github.com/opencollective/images/internal/server/handlers"
	"github.com/opencollective/images/internal/transport"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	graph     handlers.GraphService
	fetch     handlers.Fetcher
	members   *cache.Members
	cdn       *imagecdn.CDN
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(cfg Config, logger *zerolog.Logger) *Server {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = cache.DefaultTTL
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = cache.DefaultSize
	}
	if cfg.ImagesURL == "" {
		cfg.ImagesURL = config.DefaultImagesURL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = config.DefaultAPIURL
	}
	if cfg.WebsiteURL == "" {
		cfg.WebsiteURL = config.DefaultWebsiteURL
	}

	return &Server{
		graph:     graph.New(cfg.APIURL, nil),
		fetch:     transport.New(),
		members:   cache.NewMembers(cfg.CacheSize, cfg.CacheTTL),
		cdn:       imagecdn.New(cfg.ImageCDNURL),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Cache returns the server's member cache.
func (s *Server) Cache() *cache.Members {
	return s.members
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
