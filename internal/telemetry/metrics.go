// Package telemetry exposes Prometheus metrics for the RPC surface and the
// registry lifecycle.
package telemetry

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dimred"

// Metrics owns a dedicated registry so tests can build as many as they like.
type Metrics struct {
	reg *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
	fitDuration *prometheus.HistogramVec
	pipelines   prometheus.Gauge
	lastSwap    prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "gRPC handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		fitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fit_duration_seconds",
			Help:      "Time to fit and persist the whole registry.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 14),
		}, []string{"result"}),
		pipelines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_pipelines",
			Help:      "Pipelines in the live registry.",
		}),
		lastSwap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_last_swap_timestamp_seconds",
			Help:      "Unix time of the last Fit or Load that replaced the registry.",
		}),
	}
	m.reg.MustRegister(
		m.rpcRequests, m.rpcDuration, m.fitDuration, m.pipelines, m.lastSwap,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) ObserveRPC(method, code string, d time.Duration) {
	m.rpcRequests.WithLabelValues(method, code).Inc()
	m.rpcDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) ObserveFit(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.fitDuration.WithLabelValues(result).Observe(d.Seconds())
}

func (m *Metrics) RegistrySwapped(pipelines int, at time.Time) {
	m.pipelines.Set(float64(pipelines))
	m.lastSwap.Set(float64(at.UnixNano()) / 1e9)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Server serves /metrics until Shutdown.
type Server struct {
	http *http.Server
	lis  net.Listener
}

func (m *Metrics) Listen(addr string) (*Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return &Server{
		http: &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		lis:  lis,
	}, nil
}

func (s *Server) Addr() string { return s.lis.Addr().String() }

func (s *Server) Serve() error {
	if err := s.http.Serve(s.lis); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
