package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	cyclesTotal   *prometheus.CounterVec
	cacheReads    *prometheus.CounterVec
	assetFailures *prometheus.CounterVec
	fetchLatency  *prometheus.HistogramVec
	panelSize     prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		cyclesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_report_cycles_total",
				Help: "Total number of report cycles by outcome",
			},
			[]string{"outcome"},
		),
		cacheReads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_cache_reads_total",
				Help: "Report cache reads by result",
			},
			[]string{"result"},
		),
		assetFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_asset_failures_total",
				Help: "Per-asset pipeline failures by stage",
			},
			[]string{"stage"},
		),
		fetchLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coinpulse_fetch_duration_seconds",
				Help:    "Duration of external data fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		panelSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "coinpulse_panel_assets",
				Help: "Number of assets in the last generated report",
			},
		),
	}
}

// RecordCycle records a completed report cycle.
func (r *Recorder) RecordCycle(outcome string) {
	r.cyclesTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheRead records a report cache read.
func (r *Recorder) RecordCacheRead(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheReads.WithLabelValues(result).Inc()
}

// RecordAssetFailure records a dropped asset by pipeline stage.
func (r *Recorder) RecordAssetFailure(stage string) {
	r.assetFailures.WithLabelValues(stage).Inc()
}

// RecordFetchLatency records an external fetch duration in seconds.
func (r *Recorder) RecordFetchLatency(source string, seconds float64) {
	r.fetchLatency.WithLabelValues(source).Observe(seconds)
}

// RecordPanelSize records the asset count of the last report.
func (r *Recorder) RecordPanelSize(n int) {
	r.panelSize.Set(float64(n))
}
