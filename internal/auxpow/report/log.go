package report

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"go.uber.org/zap"
)

// LogReporter writes snapshots and the ranking to a zap logger.
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter constructs a LogReporter.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	return &LogReporter{logger: logger.Named("report")}
}

// ReportSnapshot logs the legend of a period.
func (r *LogReporter) ReportSnapshot(_ context.Context, snapshot model.PeriodSnapshot) error {
	legend := make([]string, 0, len(snapshot.Legend))
	for _, share := range snapshot.Legend {
		legend = append(legend, fmt.Sprintf("%s %s", share.Miner, share.Percentage))
	}
	r.logger.Info("period snapshot",
		zap.Uint64("height", snapshot.Height),
		zap.String("date", snapshot.Timestamp().Format("02 Jan 2006")),
		zap.Uint64("blocks", snapshot.Total),
		zap.Strings("legend", legend),
	)
	return nil
}

// ReportRanking logs one line per ranked miner.
func (r *LogReporter) ReportRanking(_ context.Context, ranking model.Ranking) error {
	r.logger.Info("final ranking", zap.Uint64("height", ranking.Height), zap.Uint64("blocks", ranking.Total))
	for i, entry := range ranking.Entries {
		r.logger.Info("ranked miner",
			zap.Int("rank", i+1),
			zap.String("miner", entry.Miner),
			zap.Uint64("total", entry.Total),
		)
	}
	return nil
}
