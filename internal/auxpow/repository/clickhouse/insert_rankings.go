package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

const insertRankingsQuery = `
INSERT INTO auxpow_rankings (
	network,
	run_at,
	height,
	rank,
	miner,
	total,
	color
) VALUES`

// InsertRankings stores final ranking rows in ClickHouse.
func (r *Repository) InsertRankings(ctx context.Context, rows []model.RankingRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_rankings", firstNetwork(rows), len(rows), err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRankingsQuery)
	if err != nil {
		return fmt.Errorf("prepare rankings batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			string(row.Network),
			row.RunAt,
			row.Height,
			row.Rank,
			row.Miner,
			row.Total,
			row.Color,
		); err != nil {
			return fmt.Errorf("append ranking: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert rankings: %w", err)
	}
	return nil
}
