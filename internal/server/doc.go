// Package server provides the read-only HTTP surface for the learning
// engine: the adaptive context, suggestions and report endpoints, health
// probes, and a dedicated Prometheus metrics server.
//
// # Key Components
//
// ServerContext holds the paths to the feedback log and interest profile.
// Both files are reloaded per request; the CLI remains the only writer,
// so the server never races against itself on disk state.
//
// HealthChecker serves /healthz and /readyz for orchestration probes,
// with /healthz/detailed for operator inspection.
//
// MetricsServer serves /metrics on a dedicated port, isolating
// operational metrics from API traffic.
package server
