// Package main provides the entry point for the images service CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/opencollective/images/cmd/images/cmd"
)

// Version information populated by the release pipeline.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Load .env if present; environment variables win over file values.
	_ = godotenv.Load()

	cmd.SetVersionInfo(version, commit, date)

	// Create context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
