package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/bookshelf/internal/books"
	"github.com/mrlokans/bookshelf/internal/cli"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/logging"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	cfg := config.NewConfig()
	logger := logging.New(cfg.Log.Level, os.Stderr)
	log.Logger = logger

	ctx := context.Background()

	switch command {
	case "save":
		cmd := cli.NewSaveCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		repo, closeRepo, err := entrypoint.OpenRepository(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closeRepo()
		if err := cmd.Run(ctx, repo); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeRepo()
			os.Exit(1)
		}

	case "get":
		cmd := cli.NewGetCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		repo, closeRepo, err := entrypoint.OpenRepository(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closeRepo()
		if err := cmd.Run(ctx, repo); err != nil {
			if errors.Is(err, books.ErrNotFound) {
				fmt.Fprintln(os.Stderr, "book not found")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			closeRepo()
			os.Exit(1)
		}

	case "version":
		fmt.Printf("bookshelf %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  save      Save a book and print its id\n")
	fmt.Fprintf(os.Stderr, "  get       Print a saved book by id\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nStorage is selected with STORAGE_BACKEND (memory, sqlite, postgres, dynamodb).\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
