// Package extractor copies block metadata from the node into the dataset, page by page.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/address"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/namecoin"
	"github.com/goodnatureofminers/auxpowstats/internal/clock"
	"go.uber.org/zap"
)

var errTipUnavailable = errors.New("chain tip unavailable")

// Config controls paging, retries and follow mode.
type Config struct {
	PageSize uint64
	// MaxAttempts bounds consecutive failed attempts without progress.
	MaxAttempts int
	RetryDelay  time.Duration
	// Follow keeps the service running after the tip is reached.
	Follow       bool
	PollInterval time.Duration
}

func (c Config) validate() error {
	switch {
	case c.PageSize == 0:
		return errors.New("page size must be positive")
	case c.MaxAttempts < 1:
		return errors.New("max attempts must be at least 1")
	case c.Follow && c.PollInterval <= 0:
		return errors.New("poll interval must be positive in follow mode")
	}
	return nil
}

// Service reads pages from the node, normalizes payout addresses and appends rows to the dataset.
type Service struct {
	logger      *zap.Logger
	metrics     Metrics
	reader      ChainReader
	normalizer  AddressNormalizer
	writer      DatasetWriter
	cfg         Config
	sleep       func(context.Context, time.Duration) error
	blockSignal <-chan struct{}
}

// NewService builds a Service. blockSignal may be nil, in which case follow mode polls.
func NewService(
	reader ChainReader,
	normalizer AddressNormalizer,
	writer DatasetWriter,
	metrics Metrics,
	cfg Config,
	network model.Network,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("extractor metrics is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Service{
		logger:      logger.Named("extractor").With(zap.String("network", string(network))),
		metrics:     metrics,
		reader:      reader,
		normalizer:  normalizer,
		writer:      writer,
		cfg:         cfg,
		sleep:       clock.SleepWithContext,
		blockSignal: blockSignal,
	}, nil
}

// Run extracts from the dataset's next height up to the tip. In follow mode it then waits for new
// blocks until the context is canceled. Failed node reads are retried with backoff; the attempt
// count resets whenever a page is written.
func (s *Service) Run(ctx context.Context) error {
	attempts := 0
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		progressed, err := s.run(ctx)
		if progressed {
			attempts = 0
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			attempts++
			if !retryable(err) || attempts >= s.cfg.MaxAttempts {
				return err
			}
			delay := clock.Backoff(s.cfg.RetryDelay, maxRetryDelay, attempts)
			s.logger.Warn("run iteration failed, backing off",
				zap.Error(err),
				zap.Int("attempt", attempts),
				zap.Duration("sleep", delay),
			)
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		if !s.cfg.Follow {
			return nil
		}
		if err := s.wait(ctx, s.cfg.PollInterval); err != nil {
			return err
		}
	}
}

// run extracts one pass up to the current tip. progressed reports whether any page was written.
func (s *Service) run(ctx context.Context) (progressed bool, err error) {
	tip, err := s.reader.Tip(ctx)
	s.metrics.ObserveTip(err, tip)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errTipUnavailable, err)
	}

	next := s.writer.Next()
	if next > tip {
		s.logger.Debug("dataset is at tip", zap.Uint64("tip", tip))
		return false, nil
	}

	s.logger.Info("extracting blocks", zap.Uint64("from", next), zap.Uint64("to", tip))
	started := time.Now()
	for blocks, err := range s.reader.Paginate(ctx, next, tip, s.cfg.PageSize) {
		if err != nil {
			s.metrics.ObservePage(err, 0, started)
			return progressed, err
		}
		if len(blocks) == 0 {
			continue
		}

		records := make([]model.BlockRecord, 0, len(blocks))
		for _, block := range blocks {
			records = append(records, s.record(block))
		}
		if err := s.writer.WritePage(records); err != nil {
			err = fmt.Errorf("write page: %w", err)
			s.metrics.ObservePage(err, len(records), started)
			return progressed, err
		}
		s.metrics.ObservePage(nil, len(records), started)

		last := records[len(records)-1].Height
		s.metrics.ObserveWrittenHeight(last)
		s.logger.Info("page written",
			zap.Uint64("first", records[0].Height),
			zap.Uint64("last", last),
		)
		progressed = true
		started = time.Now()
	}

	return progressed, nil
}

// record converts a block into a dataset row. A payout address that cannot be normalized is
// logged and left blank; the row is still written.
func (s *Service) record(block namecoin.Block) model.BlockRecord {
	rec := model.BlockRecord{
		Height:   block.Height,
		Time:     block.Time,
		Bits:     block.Bits,
		Coinbase: block.Coinbase,
	}
	if block.PayoutAddress == "" {
		return rec
	}

	normalized, err := s.normalizer.Reencode(block.PayoutAddress)
	if err != nil {
		s.logger.Warn("payout address not normalized",
			zap.Uint64("height", block.Height),
			zap.String("address", block.PayoutAddress),
			zap.Error(err),
		)
		s.metrics.ObserveAddressFailure(failureReason(err))
		return rec
	}
	rec.Address = normalized
	return rec
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, address.ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, address.ErrUnknownAddressVersion):
		return "unknown_version"
	case errors.Is(err, address.ErrUnrecognizedFormat):
		return "unrecognized_format"
	default:
		return "other"
	}
}

func retryable(err error) bool {
	var readErr *namecoin.ChainReadError
	return errors.As(err, &readErr) || errors.Is(err, errTipUnavailable)
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case _, ok := <-s.blockSignal:
		if !ok {
			s.logger.Warn("block signal closed, falling back to polling")
			s.blockSignal = nil
			return s.sleep(ctx, d)
		}
		s.logger.Debug("new block signaled")
		return nil
	case <-timer.C:
		return nil
	}
}
