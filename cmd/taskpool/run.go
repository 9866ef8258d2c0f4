package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kubev2v/taskpool/internal/config"
	"github.com/kubev2v/taskpool/internal/handlers"
	"github.com/kubev2v/taskpool/internal/metrics"
	"github.com/kubev2v/taskpool/internal/server"
	"github.com/kubev2v/taskpool/internal/services"
	"github.com/kubev2v/taskpool/pkg/pool"
)

const shutdownTimeout = 30 * time.Second

func newRunCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	registerFlags(cmd.Flags(), cfg)

	return cmd
}

func registerFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.StringVar(&cfg.Server.Address, "address", cfg.Server.Address, "Listen address")
	flags.StringVar(&cfg.Server.Mode, "mode", cfg.Server.Mode, "Server mode: 'dev' or 'prod'")
	flags.StringVar(&cfg.Server.StaticsFolder, "statics-folder", cfg.Server.StaticsFolder, "Folder holding hello.html and 404.html")
	flags.DurationVar(&cfg.Server.SleepDuration, "sleep-duration", cfg.Server.SleepDuration, "Delay of the /sleep route")
	flags.UintVar(&cfg.Server.BindRetries, "bind-retries", cfg.Server.BindRetries, "Attempts to bind the listen address")
	flags.IntVar(&cfg.Pool.Size, "pool-size", cfg.Pool.Size, "Number of workers serving requests")
	flags.StringVar(&cfg.Pool.Name, "pool-name", cfg.Pool.Name, "Name of the worker pool in logs and metrics")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: 'console' or 'json'")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
}

func run(ctx context.Context, cfg *config.Configuration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	undo := zap.ReplaceGlobals(logger)
	defer undo()
	defer func() { _ = logger.Sync() }()

	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())

	pages, err := services.NewPagesService(cfg.Server.StaticsFolder)
	if err != nil {
		return err
	}

	poolMetrics, err := metrics.NewObserver(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return pool.Run(cfg.Pool.Size, func(p *pool.Pool) error {
		srv := server.NewServer(cfg.Server, p, prometheus.DefaultGatherer, handlers.New(pages, cfg.Server.SleepDuration))
		return serve(ctx, srv)
	},
		pool.WithName(cfg.Pool.Name),
		pool.WithObserver(pool.Observers(pool.NewLogObserver(zap.S().Named("pool")), poolMetrics)),
	)
}

// serve runs srv until ctx is done and stops it before the pool gets closed.
func serve(ctx context.Context, srv *server.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.S().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
