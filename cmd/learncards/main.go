package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/conorfennell/learncards/internal/config"
	"github.com/conorfennell/learncards/internal/library"
	"github.com/conorfennell/learncards/internal/storage"
	"github.com/conorfennell/learncards/internal/study"
	"github.com/conorfennell/learncards/internal/sync"
	"github.com/conorfennell/learncards/internal/web"
)

const usage = `Usage: learncards [flags] <command>

Commands:
  serve                      run the web UI (default)
  import <file> --name NAME  import a CSV file as a new deck
  sync                       import every CSV file found in the configured sources

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// 1. Load configuration
	flags := config.NewFlagSet("learncards")
	flags.SetOutput(stderr)
	name := flags.String("name", "", "deck name for the import command")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	cfg, err := config.Load(flags, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "learncards: %v\n", err)
		return 2
	}

	logger := cfg.Log.NewLogger(stderr)
	slog.SetDefault(logger)

	// 2. Open the database
	db, err := storage.Open(cfg.DB)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.DB, "error", err)
		return 1
	}
	defer func() {
		_ = db.Close()
	}()
	if err := db.Init(ctx); err != nil {
		slog.Error("Failed to initialize database", "path", cfg.DB, "error", err)
		return 1
	}
	slog.Debug("Database opened successfully", "path", cfg.DB)

	lib := library.New(storage.NewDeckRepo(db), storage.NewProgressRepo(db), study.NewRand(cfg.Seed))

	// 3. Dispatch the command
	command := "serve"
	rest := flags.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	switch command {
	case "serve":
		return serve(ctx, cfg, db, lib)
	case "import":
		if len(rest) != 1 {
			flags.Usage()
			return 2
		}
		return importFile(ctx, lib, rest[0], *name, stdout)
	case "sync":
		report := sync.Run(ctx, lib, cfg.Sources, sync.Options{ReposDir: cfg.Repos, GitProgress: stderr})
		fmt.Fprintf(stdout, "Synced %d sources: %d files, %d changed, %d unchanged, %d errors.\n",
			report.Sources, report.Files, report.Changed, report.Unchanged, len(report.Errors))
		if len(report.Errors) > 0 {
			fmt.Fprintln(stdout, "\nErrors:")
			for _, e := range report.Errors {
				fmt.Fprintf(stdout, "- %s\n", e)
			}
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "learncards: unknown command %q\n", command)
		flags.Usage()
		return 2
	}
}

func importFile(ctx context.Context, lib *library.Library, path, name string, stdout io.Writer) int {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open file", "path", path, "error", err)
		return 1
	}
	defer f.Close()

	id, err := lib.Import(ctx, library.ImportRequest{Name: name, Filename: path}, f)
	if err != nil {
		slog.Error("Import failed", "path", path, "error", err)
		if library.IsInputError(err) {
			return 2
		}
		return 1
	}
	fmt.Fprintf(stdout, "Imported %s as deck %d.\n", path, id)
	return 0
}

func serve(ctx context.Context, cfg *config.Config, db *storage.DB, lib *library.Library) int {
	srv, err := web.NewServer(lib, web.Options{
		Shuffle:    cfg.Shuffle,
		SwipeRatio: cfg.Swipe.Ratio,
		SwipeSpeed: cfg.Swipe.Speed,
		Sources:    cfg.Sources,
		ReposDir:   cfg.Repos,
		Health:     db.Ping,
		Logger:     slog.Default(),
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		return 1
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}
	return 0
}
