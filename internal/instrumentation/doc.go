// Package instrumentation provides OpenTelemetry instrumentation for the
// inboxsense learning engine and its serve mode.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for feedback, analysis, profile and Gmail operations
//   - Distributed tracing for API request flows
//   - Prometheus metrics export via /metrics endpoint
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Server/HTTP Metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Feedback and Learning Metrics:
//   - feedback_recorded_total: Counter of recorded feedback entries by type and accuracy
//   - analysis_runs_total: Counter of learning analysis runs by operation and status
//   - analysis_duration_seconds: Histogram of analysis durations
//   - suggestions_generated_total: Counter of generated profile suggestions by kind
//   - profile_mutations_total: Counter of profile mutations by operation and status
//
// Gmail API Metrics:
//   - gmail_api_operations_total: Counter of Gmail API operations by operation and status
//   - gmail_api_operation_duration_seconds: Histogram of Gmail API operation durations
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: inboxsense)
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "inboxsense",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	recorder := provider.Metrics()
//	recorder.RecordFeedback(ctx, "thumbs_up", true)
//	recorder.RecordAnalysis(ctx, "patterns", "ready", time.Since(start))
package instrumentation
