package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/inboxsense/inboxsense/internal/feedback"
	"github.com/inboxsense/inboxsense/internal/instrumentation"
	"github.com/inboxsense/inboxsense/internal/profile"
)

// ServerContext holds the shared state for the API server. The feedback
// log and profile are reloaded from disk per request: the CLI writes
// them, the server only reads, and request rates are human-scale.
type ServerContext struct {
	ctx          context.Context
	cancel       context.CancelFunc
	feedbackPath string
	profilePath  string
	logger       *slog.Logger
	metrics      *instrumentation.Metrics
	mu           sync.RWMutex
	shutdown     bool
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context, feedbackPath, profilePath string, logger *slog.Logger, metrics *instrumentation.Metrics) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}

	return &ServerContext{
		ctx:          shutdownCtx,
		cancel:       cancel,
		feedbackPath: feedbackPath,
		profilePath:  profilePath,
		logger:       logger,
		metrics:      metrics,
	}
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// Metrics returns the metrics recorder.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// OpenFeedback loads the current feedback log from disk. A missing or
// corrupt log yields an empty store, never an error.
func (sc *ServerContext) OpenFeedback() *feedback.Store {
	return feedback.Open(sc.feedbackPath, sc.logger)
}

// OpenProfile loads the current profile from disk.
func (sc *ServerContext) OpenProfile() (*profile.Store, error) {
	return profile.Open(sc.profilePath, sc.logger)
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
