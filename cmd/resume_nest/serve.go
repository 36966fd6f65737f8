package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-nest/internal/config"
	"github.com/jonathan/resume-nest/internal/db"
	"github.com/jonathan/resume-nest/internal/server"
)

var (
	servePort    int
	serveMemory  bool
	serveMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes rendering, PDF export, text actions and
per-account resume storage. Without DATABASE_URL (or with --memory) accounts and
resumes are kept in memory and lost on exit.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides SERVER_PORT)")
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "Use the in-memory store even when DATABASE_URL is set")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	logger := config.NewLogger(cfg.Log)
	ctx := commandContext(cmd)

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	transformer, closeTransformer, err := newTransformer(ctx, cfg, "", logger)
	if err != nil {
		return err
	}
	defer closeTransformer()

	srv, err := server.New(cfg, server.Deps{
		Store:       store,
		Transformer: transformer,
		Exporter:    newExportPipeline(cfg, logger),
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (server.Store, func(), error) {
	if serveMemory || cfg.Database.URL == "" {
		logger.Warn("using in-memory store, data will not survive a restart")
		return server.NewMemoryStore(), func() {}, nil
	}

	if serveMigrate {
		if err := db.Migrate(ctx, cfg.Database.URL, logger); err != nil {
			return nil, nil, err
		}
	}

	database, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, database.Close, nil
}
