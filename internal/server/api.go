package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/inboxsense/inboxsense/internal/instrumentation"
	"github.com/inboxsense/inboxsense/internal/learning"
	"github.com/inboxsense/inboxsense/internal/logging"
)

// suggestionsResponse wraps the suggestion payload with the readiness
// status, mirroring the adaptive context's tagged shape.
type suggestionsResponse struct {
	Status        learning.Status       `json:"status"`
	FeedbackCount int                   `json:"feedback_count,omitempty"`
	Suggestions   *learning.Suggestions `json:"suggestions,omitempty"`
}

// RegisterAPIEndpoints registers the read-only learning API on the mux.
func (sc *ServerContext) RegisterAPIEndpoints(mux *http.ServeMux) {
	mux.Handle("/api/v1/context", sc.instrument("/api/v1/context", sc.handleContext))
	mux.Handle("/api/v1/suggestions", sc.instrument("/api/v1/suggestions", sc.handleSuggestions))
	mux.Handle("/api/v1/report", sc.instrument("/api/v1/report", sc.handleReport))
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (sc *ServerContext) instrument(path string, handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		start := time.Now()
		ctx, span := instrumentation.StartSpan(r.Context(), "api"+path,
			attribute.String(instrumentation.SpanAttrOperation, path))
		defer span.End()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		handler(recorder, r.WithContext(ctx))

		if recorder.status >= http.StatusBadRequest {
			instrumentation.SetSpanError(span, nil)
		} else {
			instrumentation.SetSpanSuccess(span)
		}
		sc.metrics.RecordHTTPRequest(ctx, r.Method, path, recorder.status, time.Since(start))
	})
}

func (sc *ServerContext) handleContext(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithOperation(sc.logger, "api.context")
	store := sc.OpenFeedback()

	builder := learning.ContextBuilder{}
	if profiles, err := sc.OpenProfile(); err == nil {
		builder.TrustedSenders = profiles.Current().TrustedSenders
	} else {
		logger.Warn("failed to load profile, building context without trusted senders", logging.Err(err))
	}

	start := time.Now()
	adaptive := builder.Build(store.Entries())
	sc.metrics.RecordAnalysis(r.Context(), "context", string(adaptive.Status), time.Since(start))

	writeJSON(w, http.StatusOK, adaptive)
}

func (sc *ServerContext) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithOperation(sc.logger, "api.suggestions")
	store := sc.OpenFeedback()

	eng := learning.SuggestionEngine{}
	if profiles, err := sc.OpenProfile(); err == nil {
		eng.Interests = profiles.Current().CoreInterests
		eng.TrustedSenders = profiles.Current().TrustedSenders
	} else {
		logger.Warn("failed to load profile, suggesting without profile gating", logging.Err(err))
	}

	entries := store.Entries()
	start := time.Now()
	suggestions, ok := eng.Suggest(entries)
	if !ok {
		sc.metrics.RecordAnalysis(r.Context(), "suggestions", instrumentation.StatusInsufficientData, time.Since(start))
		writeJSON(w, http.StatusOK, suggestionsResponse{
			Status:        learning.StatusInsufficientData,
			FeedbackCount: len(entries),
		})
		return
	}
	sc.metrics.RecordAnalysis(r.Context(), "suggestions", instrumentation.StatusReady, time.Since(start))

	sc.metrics.RecordSuggestions(r.Context(), "add_interests", len(suggestions.AddInterests))
	sc.metrics.RecordSuggestions(r.Context(), "remove_interests", len(suggestions.RemoveInterests))
	sc.metrics.RecordSuggestions(r.Context(), "add_senders", len(suggestions.AddSenders))

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Status:      learning.StatusReady,
		Suggestions: suggestions,
	})
}

func (sc *ServerContext) handleReport(w http.ResponseWriter, r *http.Request) {
	store := sc.OpenFeedback()

	eng := learning.SuggestionEngine{}
	if profiles, err := sc.OpenProfile(); err == nil {
		eng.Interests = profiles.Current().CoreInterests
		eng.TrustedSenders = profiles.Current().TrustedSenders
	}

	start := time.Now()
	report := learning.Report(store.Entries(), store.Stats(), &eng, time.Now())
	sc.metrics.RecordAnalysis(r.Context(), "report", instrumentation.StatusReady, time.Since(start))

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
