package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/instrumentation"
	"github.com/inboxsense/inboxsense/internal/logging"
	"github.com/inboxsense/inboxsense/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		httpAddr       string
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the read-only learning API server",
		Long: `Start an HTTP server exposing the learning state:

  GET /api/v1/context      adaptive analysis context
  GET /api/v1/suggestions  profile update suggestions
  GET /api/v1/report       markdown learning report
  GET /healthz, /readyz    health probes

The server only reads the feedback log and profile from disk; all
writes go through the CLI. Prometheus metrics are served on a
dedicated port.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("http-addr") {
				httpAddr = config.ServerAddr()
			}
			return runServe(httpAddr, metricsEnabled, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (SERVER_PORT env var applies when unset)")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address")
	return cmd
}

func runServe(httpAddr string, metricsEnabled bool, metricsAddr string) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := slog.Default()

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during instrumentation shutdown", logging.Err(err))
		}
	}()

	// Start metrics server on its own port
	var metricsServer *server.MetricsServer
	metricsErr := make(chan error, 1)
	if metricsEnabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsAddr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()
	}

	sc := server.NewServerContext(shutdownCtx,
		config.FeedbackLogPath(), config.ProfilePath(), logger, provider.Metrics())
	defer func() {
		if err := sc.Shutdown(); err != nil {
			logger.Error("error during server context shutdown", logging.Err(err))
		}
	}()

	mux := http.NewServeMux()
	sc.RegisterAPIEndpoints(mux)

	healthChecker := server.NewHealthChecker(sc)
	healthChecker.RegisterHealthEndpoints(mux)
	healthChecker.SetReady(true)

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("starting learning API server", "addr", httpAddr)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Info("shutdown signal received, stopping HTTP server")
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		return nil
	case err := <-metricsErr:
		if err != nil {
			return fmt.Errorf("metrics server stopped with error: %w", err)
		}
	}

	healthChecker.SetReady(false)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()

	if err := httpServer.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(stopCtx); err != nil {
			logger.Error("error during metrics server shutdown", logging.Err(err))
		}
	}

	logger.Info("HTTP server gracefully stopped")
	return nil
}
