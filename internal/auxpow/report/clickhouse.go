package report

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"github.com/goodnatureofminers/auxpowstats/pkg/batcher"
	"github.com/goodnatureofminers/auxpowstats/pkg/safe"
	"go.uber.org/zap"
)

// ClickhouseConfig tunes buffering of period share rows.
type ClickhouseConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// ClickhouseReporter persists snapshots through a batcher and the ranking directly.
type ClickhouseReporter struct {
	repository Repository
	network    model.Network
	shares     *batcher.Batcher[model.PeriodShareRow]
	now        func() time.Time
	logger     *zap.Logger
}

// NewClickhouseReporter constructs a ClickhouseReporter. Start must be called before reporting.
func NewClickhouseReporter(logger *zap.Logger, repository Repository, network model.Network, cfg ClickhouseConfig) *ClickhouseReporter {
	logger = logger.Named("clickhouse_report").With(zap.String("network", string(network)))
	return &ClickhouseReporter{
		repository: repository,
		network:    network,
		shares:     batcher.New(logger, repository.InsertPeriodShares, cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
		now:        time.Now,
		logger:     logger,
	}
}

// Start begins background flushing.
func (r *ClickhouseReporter) Start(ctx context.Context) {
	r.shares.Start(ctx)
}

// Close flushes buffered rows and reports failed flushes.
func (r *ClickhouseReporter) Close() error {
	if err := r.shares.Stop(); err != nil {
		return fmt.Errorf("flush period shares: %w", err)
	}
	return nil
}

// ReportSnapshot queues one row per snapshot entry.
func (r *ClickhouseReporter) ReportSnapshot(ctx context.Context, snapshot model.PeriodSnapshot) error {
	rows, err := PeriodShareRows(r.network, snapshot)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := r.shares.Add(ctx, row); err != nil {
			return fmt.Errorf("queue period share %d/%s: %w", row.Height, row.Miner, err)
		}
	}
	return nil
}

// ReportRanking inserts the ranking synchronously.
func (r *ClickhouseReporter) ReportRanking(ctx context.Context, ranking model.Ranking) error {
	rows, err := RankingRows(r.network, r.now().UTC().Truncate(time.Second), ranking)
	if err != nil {
		return err
	}
	if err := r.repository.InsertRankings(ctx, rows); err != nil {
		return fmt.Errorf("insert ranking: %w", err)
	}
	r.logger.Info("ranking stored", zap.Int("rows", len(rows)))
	return nil
}

// PeriodShareRows converts snapshot entries to table rows.
func PeriodShareRows(network model.Network, snapshot model.PeriodSnapshot) ([]model.PeriodShareRow, error) {
	rows := make([]model.PeriodShareRow, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		order, err := safe.Uint32(entry.Order)
		if err != nil {
			return nil, fmt.Errorf("order of %s at %d: %w", entry.Miner, snapshot.Height, err)
		}
		var share float64
		if snapshot.Total > 0 {
			share = float64(entry.Count) / float64(snapshot.Total) * 100
		}
		rows = append(rows, model.PeriodShareRow{
			Network:     network,
			Height:      snapshot.Height,
			Timestamp:   snapshot.Timestamp(),
			Miner:       entry.Miner,
			Count:       entry.Count,
			PeriodTotal: snapshot.Total,
			Share:       share,
			Order:       order,
			Color:       entry.Color,
		})
	}
	return rows, nil
}

// RankingRows converts a ranking to table rows; rank is 1-based.
func RankingRows(network model.Network, runAt time.Time, ranking model.Ranking) ([]model.RankingRow, error) {
	rows := make([]model.RankingRow, 0, len(ranking.Entries))
	for i, entry := range ranking.Entries {
		rank, err := safe.Uint32(i + 1)
		if err != nil {
			return nil, fmt.Errorf("rank of %s: %w", entry.Miner, err)
		}
		rows = append(rows, model.RankingRow{
			Network: network,
			RunAt:   runAt,
			Height:  ranking.Height,
			Rank:    rank,
			Miner:   entry.Miner,
			Total:   entry.Total,
			Color:   entry.Color,
		})
	}
	return rows, nil
}
