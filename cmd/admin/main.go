package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/cli"
	"github.com/thaedal/thaedal-admin/internal/client/session"
	"github.com/thaedal/thaedal-admin/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "thaedal-admin.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	sess := session.NewStore(apiClient, boltStorage, logger)
	apiClient.SetTokenSource(sess)
	apiClient.SetUnauthorizedHook(sess.Invalidate)

	console := cli.New(apiClient, sess, logger)
	if err := console.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("thaedal-admin version %s\n", Version)
	fmt.Printf("Build date: %s\n", BuildDate)
	fmt.Printf("Git commit: %s\n", GitCommit)
}
