package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/dayflow-backend/internal/app"
	"github.com/heartmarshall/dayflow-backend/internal/config"
	"github.com/heartmarshall/dayflow-backend/migrations"
)

func newMigrateCmd(configPath func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the database schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), configPath(), func(ctx context.Context, p *goose.Provider, log *slog.Logger) error {
					results, err := p.Up(ctx)
					for _, r := range results {
						logResult(log, r)
					}
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), configPath(), func(ctx context.Context, p *goose.Provider, log *slog.Logger) error {
					r, err := p.Down(ctx)
					if r != nil {
						logResult(log, r)
					}
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which migrations are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), configPath(), func(ctx context.Context, p *goose.Provider, _ *slog.Logger) error {
					statuses, err := p.Status(ctx)
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					for _, s := range statuses {
						applied := "pending"
						if s.State == goose.StateApplied {
							applied = s.AppliedAt.Format("2006-01-02 15:04:05")
						}
						fmt.Fprintf(out, "%-6d %-24s %s\n", s.Source.Version, applied, s.Source.Path)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func withProvider(ctx context.Context, configPath string, fn func(context.Context, *goose.Provider, *slog.Logger) error) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log, os.Stderr)

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	return fn(ctx, provider, logger)
}

func logResult(log *slog.Logger, r *goose.MigrationResult) {
	attrs := []any{
		slog.Int64("version", r.Source.Version),
		slog.String("direction", r.Direction),
		slog.Duration("duration", r.Duration),
	}
	if r.Error != nil {
		log.Error("migration failed", append(attrs, slog.String("error", r.Error.Error()))...)
		return
	}
	log.Info("migration applied", attrs...)
}
