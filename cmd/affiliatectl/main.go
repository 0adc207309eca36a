// Command affiliatectl runs operator tasks against the affiliate database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/config"
	"github.com/GlebRadaev/affiliate/internal/pg"
	"github.com/GlebRadaev/affiliate/internal/repo"
	"github.com/GlebRadaev/affiliate/internal/service"
	"github.com/GlebRadaev/affiliate/pkg/logger"
)

var Version = "dev"

// env opens what a command needs. The returned func releases it.
type env interface {
	Migrate(ctx context.Context) error
	Services(ctx context.Context) (*service.Services, func(), error)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(&dbEnv{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(e env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "affiliatectl",
		Short:         "Operator tasks for the affiliate program",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd(e))
	rootCmd.AddCommand(commissionsCmd(e))
	rootCmd.AddCommand(payoutsCmd(e))
	return rootCmd
}

func migrateCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type dbEnv struct{}

func (dbEnv) open(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.InitLogger(cfg); err != nil {
		return nil, nil, fmt.Errorf("can't init logger: %w", err)
	}
	pool, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("can't connect to database: %w", err)
	}
	return cfg, pool, nil
}

func (d dbEnv) Migrate(ctx context.Context) error {
	_, pool, err := d.open(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pg.RunMigrations(pool)
}

func (d dbEnv) Services(ctx context.Context) (*service.Services, func(), error) {
	cfg, pool, err := d.open(ctx)
	if err != nil {
		return nil, nil, err
	}
	srv, err := service.New(cfg, repo.New(pg.New(pool), pg.NewTXManager(pool)))
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return srv, func() {
		srv.Close()
		pool.Close()
		_ = zap.L().Sync()
	}, nil
}
