// Package analyzer attributes dataset rows to miners and reports period and final statistics.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"go.uber.org/zap"
)

// ErrOutOfOrder is returned when dataset heights do not run contiguously from 0.
var ErrOutOfOrder = errors.New("dataset heights out of order")

const (
	reportSnapshot = "snapshot"
	reportRanking  = "ranking"
)

// Service runs one analysis pass over a dataset.
type Service struct {
	logger     *zap.Logger
	metrics    Metrics
	classifier Classifier
	aggregator Aggregator
	reporter   Reporter
	fromHeight uint64
}

// NewService builds a Service. Rows below fromHeight are read but not analyzed.
func NewService(
	classifier Classifier,
	aggregator Aggregator,
	reporter Reporter,
	metrics Metrics,
	fromHeight uint64,
	network model.Network,
	logger *zap.Logger,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("analyzer metrics is required")
	}

	return &Service{
		logger:     logger.Named("analyzer").With(zap.String("network", string(network))),
		metrics:    metrics,
		classifier: classifier,
		aggregator: aggregator,
		reporter:   reporter,
		fromHeight: fromHeight,
	}, nil
}

// Run consumes records contiguous from height 0, reports a snapshot at every period boundary and the final
// ranking once the records are exhausted. The ranking is returned as well.
func (s *Service) Run(ctx context.Context, records iter.Seq2[model.BlockRecord, error]) (model.Ranking, error) {
	var (
		last     uint64
		seen     bool
		analyzed int
	)
	for rec, err := range records {
		if err != nil {
			return model.Ranking{}, fmt.Errorf("read dataset: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return model.Ranking{}, err
		}
		var want uint64
		if seen {
			want = last + 1
		}
		if rec.Height != want {
			return model.Ranking{}, fmt.Errorf("%w: got height %d, want %d", ErrOutOfOrder, rec.Height, want)
		}
		seen, last = true, rec.Height
		if rec.Height < s.fromHeight {
			continue
		}

		analyzed++
		snapshot := s.observe(rec)
		if snapshot == nil {
			continue
		}
		if err := s.report(ctx, reportSnapshot, func(ctx context.Context) error {
			return s.reporter.ReportSnapshot(ctx, *snapshot)
		}); err != nil {
			return model.Ranking{}, fmt.Errorf("report snapshot at %d: %w", snapshot.Height, err)
		}
	}

	ranking := s.aggregator.Ranking()
	if err := s.report(ctx, reportRanking, func(ctx context.Context) error {
		return s.reporter.ReportRanking(ctx, ranking)
	}); err != nil {
		return model.Ranking{}, fmt.Errorf("report ranking: %w", err)
	}

	s.logger.Info("analysis finished",
		zap.Int("blocks", analyzed),
		zap.Uint64("last_height", last),
		zap.Int("miners", len(ranking.Entries)),
	)
	return ranking, nil
}

func (s *Service) observe(rec model.BlockRecord) *model.PeriodSnapshot {
	miner, ok := s.classifier.Attribute(rec)
	if !ok {
		s.metrics.ObserveExcluded()
		return s.aggregator.Skip(rec)
	}
	s.metrics.ObserveAttributed(miner)
	return s.aggregator.Observe(rec, miner)
}

func (s *Service) report(ctx context.Context, kind string, fn func(context.Context) error) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveReport(kind, err, started)
	}()
	return fn(ctx)
}
