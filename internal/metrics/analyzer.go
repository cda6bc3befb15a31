package metrics

import (
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analyzerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analyzer",
		Name:      "blocks_total",
		Help:      "Count of analyzed blocks by attributed miner.",
	}, []string{"network", "miner"})

	analyzerExcludedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analyzer",
		Name:      "excluded_blocks_total",
		Help:      "Count of blocks left out of attribution.",
	}, []string{"network"})

	analyzerReportTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analyzer",
		Name:      "reports_total",
		Help:      "Count of snapshots and rankings handed to reporters.",
	}, []string{"network", "kind", "status"})

	analyzerReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analyzer",
		Name:      "report_duration_seconds",
		Help:      "Duration of reporting a snapshot or ranking.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "kind", "status"})
)

// Analyzer tracks metrics for the analysis pipeline.
type Analyzer struct {
	network model.Network
}

// NewAnalyzer constructs an Analyzer metrics collector.
func NewAnalyzer(network model.Network) *Analyzer {
	return &Analyzer{network: networkLabel(network)}
}

// ObserveAttributed records a block attributed to miner.
func (m Analyzer) ObserveAttributed(miner string) {
	analyzerBlocksTotal.WithLabelValues(string(m.network), miner).Inc()
}

// ObserveExcluded records a block excluded by policy.
func (m Analyzer) ObserveExcluded() {
	analyzerExcludedTotal.WithLabelValues(string(m.network)).Inc()
}

// ObserveReport records a reporter call; kind is "snapshot" or "ranking".
func (m Analyzer) ObserveReport(kind string, err error, started time.Time) {
	status := statusLabel(err)
	analyzerReportTotal.WithLabelValues(string(m.network), kind, status).Inc()
	analyzerReportDuration.WithLabelValues(string(m.network), kind, status).Observe(time.Since(started).Seconds())
}
