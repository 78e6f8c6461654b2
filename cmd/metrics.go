package cmd

import (
	"context"
	"log/slog"

	"github.com/inboxsense/inboxsense/internal/instrumentation"
	"github.com/inboxsense/inboxsense/internal/logging"
)

// cliInstrumentation initializes the optional metrics provider for a
// one-shot command. The returned flush func shuts the provider down so
// push exporters deliver before the process exits. When instrumentation
// is disabled or fails to start, the recorder is a no-op.
func cliInstrumentation(ctx context.Context) (*instrumentation.Metrics, func()) {
	cfg := instrumentation.DefaultConfig()
	cfg.ServiceVersion = version

	provider, err := instrumentation.NewProvider(ctx, cfg)
	if err != nil {
		slog.Default().Warn("instrumentation unavailable, continuing without metrics", logging.Err(err))
		return &instrumentation.Metrics{}, func() {}
	}
	return provider.Metrics(), func() {
		if err := provider.Shutdown(ctx); err != nil {
			slog.Default().Warn("error shutting down instrumentation", logging.Err(err))
		}
	}
}

func statusOf(err error) string {
	if err != nil {
		return instrumentation.StatusError
	}
	return instrumentation.StatusSuccess
}

// instrumentedMutation runs a profile mutation and records its outcome.
func instrumentedMutation(ctx context.Context, operation string, fn func() error) error {
	metrics, flush := cliInstrumentation(ctx)
	defer flush()

	err := fn()
	metrics.RecordProfileMutation(ctx, operation, statusOf(err))
	return err
}
