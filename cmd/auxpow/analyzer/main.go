package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/dataset"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/miners"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/report"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/repository/clickhouse"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/service/analyzer"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/stats"
	"github.com/goodnatureofminers/auxpowstats/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Network       model.Network `long:"network" env:"AUXPOW_ANALYZER_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" default:"mainnet"`
	Registry      string        `long:"registry" env:"AUXPOW_ANALYZER_REGISTRY" description:"path of the miner registry JSON" required:"true"`
	Dataset       string        `long:"dataset" env:"AUXPOW_ANALYZER_DATASET" description:"path of the CSV dataset" default:"auxpow-blocks.csv"`
	OutDir        string        `long:"out-dir" env:"AUXPOW_ANALYZER_OUT_DIR" description:"directory for snapshot and ranking JSON files; disabled when empty"`
	Policy        string        `long:"no-auxpow-policy" env:"AUXPOW_ANALYZER_NO_AUXPOW_POLICY" description:"attribution of blocks without auxpow" choice:"classify" choice:"unknown" choice:"exclude" default:"classify"`
	FromHeight    uint64        `long:"from-height" env:"AUXPOW_ANALYZER_FROM_HEIGHT" description:"first height to analyze"`
	Period        uint64        `long:"period" env:"AUXPOW_ANALYZER_PERIOD" description:"blocks per statistics period" default:"2016"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"AUXPOW_ANALYZER_CLICKHOUSE_DSN" description:"ClickHouse DSN; snapshots are not stored when empty"`
	FlushSize     int           `long:"flush-size" env:"AUXPOW_ANALYZER_FLUSH_SIZE" description:"period share rows per ClickHouse insert" default:"1000"`
	FlushInterval time.Duration `long:"flush-interval" env:"AUXPOW_ANALYZER_FLUSH_INTERVAL" description:"maximum delay before buffered rows are inserted" default:"5s"`
	FlushRPS      int           `long:"flush-rps" env:"AUXPOW_ANALYZER_FLUSH_RPS" description:"maximum ClickHouse inserts per second" default:"10"`
	MetricsAddr   string        `long:"metrics-addr" env:"AUXPOW_ANALYZER_METRICS_ADDR" description:"address for metrics server; disabled when empty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("auxpow analyzer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (err error) {
	registry, err := miners.LoadFile(cfg.Registry)
	if err != nil {
		return err
	}
	policy, err := miners.ParseNoAuxPowPolicy(cfg.Policy)
	if err != nil {
		return err
	}
	aggregator, err := stats.NewAggregator(cfg.Period, registry.Names())
	if err != nil {
		return err
	}
	logger.Info("miner registry loaded", zap.Int("miners", registry.Len()), zap.String("policy", string(policy)))

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	reporters := report.Multi{report.NewLogReporter(logger)}
	if cfg.OutDir != "" {
		files, err := report.NewFileReporter(cfg.OutDir)
		if err != nil {
			return err
		}
		reporters = append(reporters, files)
	}
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if closeErr := repo.Close(); closeErr != nil {
				logger.Error("failed to close clickhouse connection", zap.Error(closeErr))
			}
		}()

		store := report.NewClickhouseReporter(logger, repo, cfg.Network, report.ClickhouseConfig{
			FlushSize:     cfg.FlushSize,
			FlushInterval: cfg.FlushInterval,
			RPS:           cfg.FlushRPS,
		})
		store.Start(ctx)
		defer func() {
			err = errors.Join(err, store.Close())
		}()
		reporters = append(reporters, store)
	}

	f, err := os.Open(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	svc, err := analyzer.NewService(
		miners.NewClassifier(registry, policy),
		aggregator,
		reporters,
		metrics.NewAnalyzer(cfg.Network),
		cfg.FromHeight,
		cfg.Network,
		logger,
	)
	if err != nil {
		return err
	}

	_, err = svc.Run(ctx, dataset.Records(bufio.NewReader(f)))
	return err
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
