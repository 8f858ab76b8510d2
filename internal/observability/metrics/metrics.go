package metrics

import (
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "billdesk_"

	// ResultSuccess labels a successful operation.
	ResultSuccess = "success"
	// ResultError labels a failed operation.
	ResultError = "error"
)

var (
	registerOnce sync.Once

	renderTotal   *prometheus.CounterVec
	renderLatency *prometheus.HistogramVec
	renderPages   prometheus.Histogram

	assetEmbedFailures *prometheus.CounterVec
)

// Init registers render observability metrics.
func Init(logger *log.Logger) {
	registerOnce.Do(func() {
		renderTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "render_total",
				Help: "Total document renders by kind, theme, mode and result",
			},
			[]string{"kind", "theme", "mode", "result"},
		)
		renderLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "render_latency_seconds",
				Help:    "Document render latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		renderPages = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "render_pages",
				Help:    "Pages per rendered document",
				Buckets: []float64{1, 2, 3, 5, 8, 13},
			},
		)
		assetEmbedFailures = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "asset_embed_failures_total",
				Help: "Total skipped raster assets by role",
			},
			[]string{"role"},
		)

		prometheus.MustRegister(
			renderTotal,
			renderLatency,
			renderPages,
			assetEmbedFailures,
		)

		if logger != nil {
			logger.Printf("metrics: registered")
		}
	})
}

// ObserveRender records one render call.
func ObserveRender(kind, theme, mode, result string, pages int, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if renderTotal != nil {
		renderTotal.WithLabelValues(kind, theme, mode, result).Inc()
	}
	if renderLatency != nil {
		renderLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
	if renderPages != nil && pages > 0 {
		renderPages.Observe(float64(pages))
	}
}

// IncAssetEmbedFailure counts a skipped raster asset.
func IncAssetEmbedFailure(role string) {
	if role == "" {
		role = "unknown"
	}
	if assetEmbedFailures != nil {
		assetEmbedFailures.WithLabelValues(role).Inc()
	}
}
