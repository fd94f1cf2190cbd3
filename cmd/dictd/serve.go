package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/dictd/internal/config"
	"github.com/at-ishikawa/dictd/internal/database"
	"github.com/at-ishikawa/dictd/internal/dictionary"
	"github.com/at-ishikawa/dictd/internal/server"
)

func newServeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dictionary over TCP",
		Args:  cobra.NoArgs,
	}
	flags := command.Flags()
	flags.String("address", server.DefaultAddress, "address to listen on")
	flags.Int("max-connections", 0, "maximum number of simultaneous clients, 0 for no limit")
	flags.String("seed-file", "", "YAML file loaded into the dictionary at startup")

	command.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(
			flagBinding{key: "server.address", flag: flags.Lookup("address")},
			flagBinding{key: "server.max_connections", flag: flags.Lookup("max-connections")},
			flagBinding{key: "seed.file", flag: flags.Lookup("seed-file")},
		)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := dictionary.NewStore()
		if err := seedStore(ctx, store, cfg.Seed); err != nil {
			return err
		}

		srv := server.New(cfg.Server.Address, store,
			server.WithMaxConnections(cfg.Server.MaxConnections),
			server.WithIdleTimeout(cfg.Server.IdleTimeout),
		)
		return runServer(ctx, srv)
	}
	return command
}

// runServer serves until ctx is cancelled.
func runServer(ctx context.Context, srv *server.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("srv.ListenAndServe() > %w", err)
	case <-ctx.Done():
		slog.Info("shutting down the dictionary server")
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("srv.Shutdown() > %w", err)
		}
		if err := <-errCh; !errors.Is(err, server.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	}
}

func seedStore(ctx context.Context, store *dictionary.Store, cfg config.SeedConfig) error {
	var repositories []dictionary.EntryRepository
	if cfg.File != "" {
		repositories = append(repositories, dictionary.NewYAMLEntryRepository(cfg.File))
	}
	if cfg.Database.Enabled() {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("database.Connect() > %w", err)
		}
		defer func() {
			_ = db.Close()
		}()
		repositories = append(repositories, dictionary.NewDBEntryRepository(db))
	}
	if len(repositories) == 0 {
		return nil
	}

	count, err := dictionary.Seed(ctx, store, repositories...)
	if err != nil {
		return fmt.Errorf("dictionary.Seed() > %w", err)
	}
	slog.Info("dictionary seeded", "entries", count, "sources", len(repositories))
	return nil
}
