package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	// Common attributes (reused across metrics)
	attrMethod    = "method"
	attrPath      = "path"
	attrStatus    = "status"
	attrOperation = "operation"
	attrResult    = "result"
	attrKind      = "kind"
	attrType      = "type"
	attrAccurate  = "accurate"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// HTTP metrics (serve mode)
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram

	// Feedback and learning metrics
	feedbackRecordedTotal     metric.Int64Counter
	analysisRunsTotal         metric.Int64Counter
	analysisDuration          metric.Float64Histogram
	suggestionsGeneratedTotal metric.Int64Counter
	profileMutationsTotal     metric.Int64Counter

	// Gmail API metrics
	gmailOperationsTotal   metric.Int64Counter
	gmailOperationDuration metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	// HTTP Metrics
	m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	m.httpRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	// Feedback Metrics
	m.feedbackRecordedTotal, err = meter.Int64Counter(
		"feedback_recorded_total",
		metric.WithDescription("Total number of feedback entries recorded"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback_recorded_total counter: %w", err)
	}

	// Learning Metrics
	m.analysisRunsTotal, err = meter.Int64Counter(
		"analysis_runs_total",
		metric.WithDescription("Total number of learning analysis runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis_runs_total counter: %w", err)
	}

	m.analysisDuration, err = meter.Float64Histogram(
		"analysis_duration_seconds",
		metric.WithDescription("Learning analysis duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis_duration_seconds histogram: %w", err)
	}

	m.suggestionsGeneratedTotal, err = meter.Int64Counter(
		"suggestions_generated_total",
		metric.WithDescription("Total number of profile suggestions generated"),
		metric.WithUnit("{suggestion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestions_generated_total counter: %w", err)
	}

	// Profile Metrics
	m.profileMutationsTotal, err = meter.Int64Counter(
		"profile_mutations_total",
		metric.WithDescription("Total number of profile mutations"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile_mutations_total counter: %w", err)
	}

	// Gmail API Metrics
	m.gmailOperationsTotal, err = meter.Int64Counter(
		"gmail_api_operations_total",
		metric.WithDescription("Total number of Gmail API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail_api_operations_total counter: %w", err)
	}

	m.gmailOperationDuration, err = meter.Float64Histogram(
		"gmail_api_operation_duration_seconds",
		metric.WithDescription("Gmail API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail_api_operation_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request with method, path, status code, and duration.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m.httpRequestsTotal == nil || m.httpRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}

	m.httpRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.httpRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordFeedback records one feedback entry with its type and whether the
// prediction was accurate.
func (m *Metrics) RecordFeedback(ctx context.Context, feedbackType string, accurate bool) {
	if m.feedbackRecordedTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrType, feedbackType),
		attribute.Bool(attrAccurate, accurate),
	}

	m.feedbackRecordedTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordAnalysis records one learning analysis run.
//
// Parameters:
//   - operation: analysis type (patterns, content, weights, suggestions, context)
//   - status: "ready" when data sufficed, "insufficient_data" otherwise
//   - duration: time taken for the analysis
func (m *Metrics) RecordAnalysis(ctx context.Context, operation, status string, duration time.Duration) {
	if m.analysisRunsTotal == nil || m.analysisDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.analysisRunsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.analysisDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordSuggestions records generated profile suggestions by kind
// (add_interests, remove_interests, add_senders).
func (m *Metrics) RecordSuggestions(ctx context.Context, kind string, count int) {
	if m.suggestionsGeneratedTotal == nil || count <= 0 {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrKind, kind),
	}

	m.suggestionsGeneratedTotal.Add(ctx, int64(count), metric.WithAttributes(attrs...))
}

// RecordProfileMutation records a profile mutation with its operation
// (add_interests, remove_interests, add_senders, batch_add, consolidate,
// reset) and result status.
func (m *Metrics) RecordProfileMutation(ctx context.Context, operation, status string) {
	if m.profileMutationsTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.profileMutationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordGmailOperation records a Gmail API operation with operation type,
// status, and duration.
func (m *Metrics) RecordGmailOperation(ctx context.Context, operation, status string, duration time.Duration) {
	if m.gmailOperationsTotal == nil || m.gmailOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.gmailOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.gmailOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
