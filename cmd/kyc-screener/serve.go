package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/smart-kyc/kyc-screener/internal/backend"
	"github.com/smart-kyc/kyc-screener/internal/config"
	httpapp "github.com/smart-kyc/kyc-screener/internal/http"
	"github.com/smart-kyc/kyc-screener/internal/logging"
	"github.com/smart-kyc/kyc-screener/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:         "serve",
	Short:       "Run the console HTTP server.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationStructuredLog: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.BootstrapFromEnv("serve", os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := backend.New(cfg.BackendURL, cfg.BackendTimeout)
	if err != nil {
		return err
	}

	_, metricsErrCh := metrics.StartServer(ctx, cfg.MetricsAddr)

	srv, err := httpapp.NewEchoServer(cfg, client)
	if err != nil {
		return err
	}
	go srv.PruneWorkspaces(ctx)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("console listening", "addr", cfg.HTTPAddr, "backend", cfg.BackendURL)
		errCh <- srv.StartServer(httpServer)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-metricsErrCh:
		slog.Error("metrics listener failed", "error", err)
		return err
	}
}
