// Command stanwire-capture is a reference supervisor for the writer socket.
// It listens on a Unix domain socket, decodes the length-prefixed
// WriterMessage frames emitted by a sampling run, persists them to SQLite,
// and prints per-parameter draw summaries on shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fenwick-labs/stanwire/internal/capture"
	"github.com/fenwick-labs/stanwire/internal/config"
	"github.com/fenwick-labs/stanwire/internal/monitoring"
	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

var (
	configPath = flag.String("config", "", "Optional JSON config file")
	socketPath = flag.String("socket", "", "Unix socket to listen on (overrides config)")
	dbPath     = flag.String("db", "", "SQLite capture database (overrides config)")
	quiet      = flag.Bool("quiet", false, "Suppress per-connection diagnostics")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns the store lifecycle so its deferred Close survives error exits.
func run() error {
	cfg, err := config.LoadCapture(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *socketPath != "" {
		cfg.SocketPath = *socketPath
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *quiet {
		cfg.Quiet = true
	}
	if cfg.Quiet {
		monitoring.SetLogger(nil)
	}

	// A stale socket file from a previous run would fail the bind.
	if err := os.Remove(cfg.SocketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale socket %s: %w", cfg.SocketPath, err)
	}

	store, err := capture.OpenStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	listener, err := capture.Listen(cfg.SocketPath, store)
	if err != nil {
		return err
	}
	defer listener.Close()
	log.Printf("capturing run %s on %s into %s", store.RunID(), cfg.SocketPath, cfg.DBPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := listener.Serve(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	if err := listener.Close(); err != nil {
		return fmt.Errorf("close listener: %w", err)
	}

	printSummaries(store)
	return nil
}

func printSummaries(store *capture.Store) {
	summaries, err := store.Summarize(context.Background(), writerpb.WriterMessage_SAMPLE)
	if err != nil {
		log.Printf("summarize draws: %v", err)
		return
	}
	if len(summaries) == 0 {
		log.Printf("no named draws captured")
		return
	}
	log.Printf("%-20s %8s %12s %12s %12s %12s %12s", "parameter", "n", "mean", "stddev", "5%", "median", "95%")
	for _, s := range summaries {
		log.Printf("%-20s %8d %12.5g %12.5g %12.5g %12.5g %12.5g",
			s.Name, s.Count, s.Mean, s.StdDev, s.Q05, s.Median, s.Q95)
	}
}
