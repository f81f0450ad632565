// Package metrics exposes prometheus instrumentation for sampling runs: a
// latency histogram per derivation and a counter of observed values.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/model"
)

// Follow Prometheus naming practices
// https://prometheus.io/docs/practices/naming/
var (
	deriveLabels = []string{"status"}
	valueLabels  = []string{"value"}
)

var (
	MetricDeriveLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fixture_data_derive_latency_seconds",
			Help:    "fixture derivation latency (seconds).",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		deriveLabels,
	)

	MetricObservedValues = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_data_observed_values_total",
			Help: "count of derived values by rendered value.",
		},
		valueLabels,
	)
)

type MetricsServer struct {
	*http.Server

	latencyHistogram *prometheus.HistogramVec
	valueCounter     *prometheus.CounterVec
}

const (
	// MetricsPath is the endpoint sampling metrics are collected from
	MetricsPath = "/metrics"
)

type ServerConfig struct {
	Addr string
}

// NewMetricsServer returns a new prometheus server which collects sampling
// run metrics
func NewMetricsServer(cfg ServerConfig) *MetricsServer {
	mux := http.NewServeMux()

	reg := prometheus.NewRegistry()

	reg.MustRegister(MetricDeriveLatency)
	reg.MustRegister(MetricObservedValues)

	mux.Handle(MetricsPath, promhttp.HandlerFor(prometheus.Gatherers{
		reg,
	}, promhttp.HandlerOpts{}))
	return &MetricsServer{
		Server: &http.Server{
			Addr:    cfg.Addr,
			Handler: mux,
		},
		latencyHistogram: MetricDeriveLatency,
		valueCounter:     MetricObservedValues,
	}
}

// IncLatencyHistogram adds an observed measurement of derivation latency
func (m *MetricsServer) IncLatencyHistogram(duration time.Duration, lvs ...string) {
	m.latencyHistogram.WithLabelValues(lvs...).Observe(duration.Seconds())
}

// IncObservedValue counts one derived value under its rendered form
func (m *MetricsServer) IncObservedValue(value string) {
	m.valueCounter.WithLabelValues(value).Inc()
}

// SampleReport queries a prometheus server for latency quantiles of a
// completed sampling run.
func SampleReport(addr string, duration time.Duration) error {
	client, err := api.NewClient(api.Config{
		Address: addr,
	})
	if err != nil {
		return fmt.Errorf("error creating client: %w", err)
	}

	v1api := v1.NewAPI(client)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	interval := duration.Round(time.Second).String()
	getPercentile := func(percentile string) error {
		queryLatencyPercentile := "histogram_quantile(%s, sum(rate(fixture_data_derive_latency_seconds_bucket[%s])) by (le))"

		query := fmt.Sprintf(queryLatencyPercentile, percentile, interval)
		result, warnings, err := v1api.Query(ctx, query, time.Now())
		if err != nil {
			return fmt.Errorf("error querying Prometheus: %w", err)
		}
		if len(warnings) > 0 {
			fmt.Printf("Warnings: %v\n", warnings)
		}

		vec, ok := result.(model.Vector)
		if !ok {
			return fmt.Errorf("unsupported result format: %s", result.Type().String())
		}
		if vec.Len() == 0 {
			fmt.Println("Not enough samples")
			return nil
		}
		fmt.Printf("%sth percentile latency (second): %0.6f\n", percentile, vec[0].Value)
		return nil
	}

	if err := getPercentile("0.5"); err != nil {
		return err
	}
	return getPercentile("0.9")
}
