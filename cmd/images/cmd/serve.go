package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencollective/images/internal/config"
	"github.com/opencollective/images/internal/server"
	"github.com/opencollective/images/pkg/logging"
)

// serveCmd starts the HTTP server.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the image service HTTP server",
	Long: `Start the HTTP server for collective images.

Endpoints:
  - /{collectiveSlug}/logo.{format} and /{collectiveSlug}/background.{format}
  - /{collectiveSlug}/{backerType}/badge.svg (and tier variant)
  - /{collectiveSlug}/{backerType}/banner.{format} (and tier variant)
  - /{collectiveSlug}/{backerType}/avatar/{position}.{format} (and tier variant)
  - /health

Features:
  - Shared TTL+LRU member-list cache
  - Rate limiting (requests per minute per IP)
  - CORS support
  - Request logging and panic recovery
  - Graceful shutdown with connection draining`,
	Example: `  # Start on default port 3001
  images serve

  # Start on a custom port with rate limiting
  images serve --port 8080 --rate-limit 120

  # Enable CORS for specific origins
  images serve --cors --cors-origins "https://opencollective.com"`,
	RunE: runServer,
}

func init() {
	// Server configuration flags
	serveCmd.Flags().Int("port", 3001, "Server port")
	serveCmd.Flags().String("host", "0.0.0.0", "Bind address")

	// CORS flags
	serveCmd.Flags().Bool("cors", false, "Enable CORS")
	serveCmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	// Performance flags
	serveCmd.Flags().Int("rate-limit", 0, "Requests per minute per IP (0 to disable)")
	serveCmd.Flags().Int("cache-size", 5000, "Member cache capacity")
	serveCmd.Flags().Int("cache-ttl", 600, "Member cache TTL in seconds")

	// Timeout flags
	serveCmd.Flags().Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	serveCmd.Flags().Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	serveCmd.Flags().Duration("idle-timeout", 120*time.Second, "HTTP idle timeout")

	rootCmd.AddCommand(serveCmd)
}

// runServer starts the HTTP server.
func runServer(cmd *cobra.Command, _ []string) error {
	cfg := parseConfig(cmd)
	logger := logging.Default()

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Bool("cors", cfg.CORSEnabled).
		Int("rate_limit", cfg.RateLimit).
		Int("cache_size", cfg.CacheSize).
		Dur("cache_ttl", cfg.CacheTTL).
		Str("api_url", cfg.APIURL).
		Str("images_url", cfg.ImagesURL).
		Msg("Starting image service")

	srv := server.New(cfg, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// cmd.Context() carries signal handling from main.go
	return startWithGracefulShutdown(cmd.Context(), httpServer, logger)
}

// parseConfig parses command flags and environment into server configuration.
func parseConfig(cmd *cobra.Command) server.Config {
	cfg := server.Config{
		Host:         mustGetString(cmd, "host"),
		Port:         mustGetInt(cmd, "port"),
		CORSEnabled:  mustGetBool(cmd, "cors"),
		CORSOrigins:  mustGetStringSlice(cmd, "cors-origins"),
		RateLimit:    mustGetInt(cmd, "rate-limit"),
		CacheSize:    mustGetInt(cmd, "cache-size"),
		CacheTTL:     time.Duration(mustGetInt(cmd, "cache-ttl")) * time.Second,
		ReadTimeout:  mustGetDuration(cmd, "read-timeout"),
		WriteTimeout: mustGetDuration(cmd, "write-timeout"),
		IdleTimeout:  mustGetDuration(cmd, "idle-timeout"),
		ImagesURL:    config.ImagesURL(),
		APIURL:       config.APIURL(),
		WebsiteURL:   config.WebsiteURL(),
		ShieldsURL:   config.ShieldsURL(),
		ImageCDNURL:  config.ImageCDNURL(),
	}

	// Override with environment variables
	if envPort := os.Getenv("PORT"); envPort != "" {
		if p, err := parsePort(envPort); err == nil {
			cfg.Port = p
		}
	}
	if envHost := os.Getenv("HOST"); envHost != "" {
		cfg.Host = envHost
	}

	return cfg
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port out of range: %d", port)
	}
	return port, nil
}

// startWithGracefulShutdown starts the HTTP server and shuts it down
// gracefully when the context is cancelled.
func startWithGracefulShutdown(ctx context.Context, httpServer *http.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received")

		// Fresh context since the parent is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't
// exist. Only for flags defined in this package.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't
// exist. Only for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't
// exist. Only for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetStringSlice retrieves a string slice flag value or panics if the
// flag doesn't exist. Only for flags defined in this package.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetDuration retrieves a duration flag value or panics if the flag
// doesn't exist. Only for flags defined in this package.
func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}
