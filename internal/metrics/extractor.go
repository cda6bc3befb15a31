package metrics

import (
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractorTipTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "extractor",
		Name:      "tip_fetch_total",
		Help:      "Count of chain tip lookups.",
	}, []string{"network", "status"})

	extractorTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "extractor",
		Name:      "tip_height",
		Help:      "Last observed chain tip height.",
	}, []string{"network"})

	extractorPageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "extractor",
		Name:      "page_total",
		Help:      "Count of processed pages.",
	}, []string{"network", "status"})

	extractorPageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "extractor",
		Name:      "page_duration_seconds",
		Help:      "Duration of reading and writing one page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	extractorPageSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "extractor",
		Name:      "page_size",
		Help:      "Number of blocks per page.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	extractorWrittenHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "extractor",
		Name:      "written_height",
		Help:      "Highest block height durably written to the dataset.",
	}, []string{"network"})

	extractorAddressFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "extractor",
		Name:      "address_normalization_failures_total",
		Help:      "Count of payout addresses that could not be normalized.",
	}, []string{"network", "reason"})
)

// Extractor tracks metrics for the extraction pipeline.
type Extractor struct {
	network model.Network
}

// NewExtractor constructs an Extractor metrics collector.
func NewExtractor(network model.Network) *Extractor {
	return &Extractor{network: networkLabel(network)}
}

// ObserveTip records a tip lookup.
func (m Extractor) ObserveTip(err error, tip uint64) {
	extractorTipTotal.WithLabelValues(string(m.network), statusLabel(err)).Inc()
	if err == nil {
		extractorTipHeight.WithLabelValues(string(m.network)).Set(float64(tip))
	}
}

// ObservePage records a page outcome, size and duration.
func (m Extractor) ObservePage(err error, size int, started time.Time) {
	status := statusLabel(err)
	extractorPageTotal.WithLabelValues(string(m.network), status).Inc()
	extractorPageDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		extractorPageSize.WithLabelValues(string(m.network)).Observe(float64(size))
	}
}

// ObserveWrittenHeight records the last durable height.
func (m Extractor) ObserveWrittenHeight(height uint64) {
	extractorWrittenHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

// ObserveAddressFailure records a normalization failure by reason.
func (m Extractor) ObserveAddressFailure(reason string) {
	extractorAddressFailures.WithLabelValues(string(m.network), reason).Inc()
}
