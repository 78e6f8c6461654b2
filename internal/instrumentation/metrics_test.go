package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, ctx context.Context) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "GET", "/api/v1/context", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "GET", "/api/v1/suggestions", 500, 50*time.Millisecond)
}

func TestMetrics_RecordFeedback(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordFeedback(ctx, "thumbs_up", true)
	metrics.RecordFeedback(ctx, "escalate", false)
}

func TestMetrics_RecordAnalysis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordAnalysis(ctx, "patterns", StatusReady, 10*time.Millisecond)
	metrics.RecordAnalysis(ctx, "weights", StatusInsufficientData, 1*time.Millisecond)
}

func TestMetrics_RecordSuggestions(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic; zero counts are skipped
	metrics.RecordSuggestions(ctx, "add_interests", 3)
	metrics.RecordSuggestions(ctx, "add_senders", 0)
}

func TestMetrics_RecordProfileMutation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordProfileMutation(ctx, "add_interests", StatusSuccess)
	metrics.RecordProfileMutation(ctx, "batch_add", StatusError)
}

func TestMetrics_RecordGmailOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordGmailOperation(ctx, OperationList, StatusSuccess, 200*time.Millisecond)
	metrics.RecordGmailOperation(ctx, OperationArchive, StatusError, 500*time.Millisecond)
}

func TestMetrics_Uninitialized(t *testing.T) {
	ctx := context.Background()
	metrics := &Metrics{}

	// All recorders must be safe on the zero value (disabled provider)
	metrics.RecordHTTPRequest(ctx, "GET", "/healthz", 200, time.Millisecond)
	metrics.RecordFeedback(ctx, "thumbs_up", true)
	metrics.RecordAnalysis(ctx, "patterns", StatusReady, time.Millisecond)
	metrics.RecordSuggestions(ctx, "add_interests", 1)
	metrics.RecordProfileMutation(ctx, "reset", StatusSuccess)
	metrics.RecordGmailOperation(ctx, OperationGet, StatusSuccess, time.Millisecond)
}
