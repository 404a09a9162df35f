package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/thaedal/thaedal-admin/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOr("THAEDAL_ADDR", ":8080"), "Listen address")
	dbPath := flag.String("db", envOr("THAEDAL_ADMIN_DB", "thaedal-admin-server.db"), "Path to SQLite database")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	secret := os.Getenv("THAEDAL_JWT_SECRET")
	if secret == "" {
		logger.Error("THAEDAL_JWT_SECRET is not set")
		os.Exit(1)
	}

	cfg := server.Config{
		Addr:          *addr,
		DBPath:        *dbPath,
		JWTSecret:     secret,
		TokenTTL:      24 * time.Hour,
		AdminEmail:    envOr("THAEDAL_ADMIN_EMAIL", "admin@thaedal.com"),
		AdminPassword: envOr("THAEDAL_ADMIN_PASSWORD", "admin123"),
		AdminName:     envOr("THAEDAL_ADMIN_NAME", "Thaedal Admin"),
	}

	srv, err := server.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Thaedal Admin Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
