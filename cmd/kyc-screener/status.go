package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/smart-kyc/kyc-screener/internal/backend"
	"github.com/smart-kyc/kyc-screener/internal/config"
	"github.com/smart-kyc/kyc-screener/internal/screening"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the screening backend and print its health, metrics, and rule count.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func runStatus(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := backend.New(cfg.BackendURL, cfg.BackendTimeout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		health   backend.Health
		snapshot screening.Metrics
		rules    screening.RulesConfig
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		health, err = client.Health(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot, err = client.Metrics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rules, err = client.Rules(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return &exitError{code: 1, err: fmt.Errorf("backend at %s: %w", cfg.BackendURL, err)}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "backend:  %s\n", cfg.BackendURL)
	fmt.Fprintf(out, "status:   %s\n", health.Status)
	fmt.Fprintf(out, "service:  %s\n", health.Service)
	fmt.Fprintf(out, "screened: %d (approved %d, review %d, blocked %d)\n",
		snapshot.TotalScreened, snapshot.Approved, snapshot.Review, snapshot.Blocked)
	fmt.Fprintf(out, "rules:    %d configured\n", len(rules.Rules))
	return nil
}
