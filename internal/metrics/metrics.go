// Package metrics exposes Prometheus counters for calls and health probes.
package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"simconsole/internal/health"
	"simconsole/internal/orchestrator"
	"simconsole/internal/simclient"
)

// Metrics collects call and probe metrics on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	backendUp       prometheus.Gauge
	probesTotal     *prometheus.CounterVec
}

// New creates a metrics collector with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simconsole_requests_total",
				Help: "Total number of simulation calls by outcome",
			},
			[]string{"endpoint", "method", "outcome"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "simconsole_request_duration_seconds",
				Help:    "Time until response headers arrived",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		backendUp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "simconsole_backend_up",
				Help: "Backend connectivity (1 = online, 0 = offline)",
			},
		),
		probesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simconsole_health_probes_total",
				Help: "Total number of health probes by result",
			},
			[]string{"state"},
		),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records a finished call. It satisfies orchestrator.Observer.
func (m *Metrics) Observe(call orchestrator.Call, outcome simclient.Outcome) {
	if m == nil {
		return
	}

	endpoint := call.Endpoint
	if endpoint == "" {
		endpoint = "unknown"
	}
	method := call.Method
	if method == "" {
		method = "unknown"
	}

	m.requestsTotal.WithLabelValues(endpoint, method, outcome.Kind.String()).Inc()
	if outcome.Kind != simclient.KindTransport {
		m.requestDuration.WithLabelValues(endpoint).Observe(outcome.Duration.Seconds())
	}
}

// SetConnectivity records a probe result.
func (m *Metrics) SetConnectivity(s health.State) {
	if m == nil {
		return
	}
	if s.Online() {
		m.backendUp.Set(1)
	} else {
		m.backendUp.Set(0)
	}
	m.probesTotal.WithLabelValues(s.String()).Inc()
}

// StatusFunc reports the current connectivity for /healthz.
type StatusFunc func() health.State

// Handler serves /metrics and /healthz.
func (m *Metrics) Handler(status StatusFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		state := health.StateUnknown
		if status != nil {
			state = status()
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"backend": state.String(),
		})
	})

	return r
}

// Serve runs the metrics endpoint on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, status StatusFunc) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(status),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
