package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

const insertPeriodSharesQuery = `
INSERT INTO auxpow_period_shares (
	network,
	height,
	timestamp,
	miner,
	count,
	period_total,
	share,
	appearance_order,
	color
) VALUES`

// InsertPeriodShares stores snapshot entries in ClickHouse.
func (r *Repository) InsertPeriodShares(ctx context.Context, rows []model.PeriodShareRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_period_shares", firstNetwork(rows), len(rows), err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertPeriodSharesQuery)
	if err != nil {
		return fmt.Errorf("prepare period shares batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			string(row.Network),
			row.Height,
			row.Timestamp,
			row.Miner,
			row.Count,
			row.PeriodTotal,
			row.Share,
			row.Order,
			row.Color,
		); err != nil {
			return fmt.Errorf("append period share: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert period shares: %w", err)
	}
	return nil
}
