// Package metrics exposes the dashboard's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/academia/dashboard/core/report"
	"github.com/academia/dashboard/storage/restapi"
)

const namespace = "dashboard"

// Prometheus collects backend, report cache and fetch metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	fetches         *prometheus.CounterVec
	fetchDuration   prometheus.Histogram
}

var (
	_ report.Metrics          = (*Prometheus)(nil)
	_ restapi.RequestObserver = (*Prometheus)(nil)
)

func NewPrometheus(build string) *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Backend requests by resource, method and status (0 = not reached).",
		}, []string{"resource", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Backend request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "cache_lookups_total",
			Help:      "Report cache lookups by result.",
		}, []string{"result"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "fetches_total",
			Help:      "Aggregated report fetches by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the four concurrent report requests.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	buildInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "build_info",
		Help:      "Build version of the running dashboard.",
	}, []string{"build"})
	buildInfo.WithLabelValues(build).Set(1)

	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		buildInfo,
		p.requests,
		p.requestDuration,
		p.cacheLookups,
		p.fetches,
		p.fetchDuration,
	)
	return p
}

func (p *Prometheus) ObserveRequest(resource, method string, status int, d time.Duration) {
	p.requests.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
	p.requestDuration.WithLabelValues(resource).Observe(d.Seconds())
}

func (p *Prometheus) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}

func (p *Prometheus) ObserveFetch(d time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	p.fetches.WithLabelValues(outcome).Inc()
	p.fetchDuration.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
