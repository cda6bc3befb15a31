package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/address"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/dataset"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/namecoin"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/service/extractor"
	"github.com/goodnatureofminers/auxpowstats/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Network      model.Network `long:"network" env:"AUXPOW_EXTRACTOR_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" default:"mainnet"`
	RPCURL       string        `long:"rpc-url" env:"AUXPOW_EXTRACTOR_RPC_URL" description:"Namecoin RPC URL" default:"http://127.0.0.1:8336"`
	RPCUser      string        `long:"rpc-user" env:"AUXPOW_EXTRACTOR_RPC_USER" description:"Namecoin RPC username"`
	RPCPassword  string        `long:"rpc-password" env:"AUXPOW_EXTRACTOR_RPC_PASSWORD" description:"Namecoin RPC password"`
	Dataset      string        `long:"dataset" env:"AUXPOW_EXTRACTOR_DATASET" description:"path of the CSV dataset to create or extend" default:"auxpow-blocks.csv"`
	PageSize     uint64        `long:"page-size" env:"AUXPOW_EXTRACTOR_PAGE_SIZE" description:"blocks per batched RPC page" default:"500"`
	MaxAttempts  int           `long:"max-attempts" env:"AUXPOW_EXTRACTOR_MAX_ATTEMPTS" description:"consecutive failed attempts before giving up" default:"5"`
	RetryDelay   time.Duration `long:"retry-delay" env:"AUXPOW_EXTRACTOR_RETRY_DELAY" description:"initial delay between retries" default:"2s"`
	Follow       bool          `long:"follow" env:"AUXPOW_EXTRACTOR_FOLLOW" description:"keep following new blocks after reaching the tip"`
	PollInterval time.Duration `long:"poll-interval" env:"AUXPOW_EXTRACTOR_POLL_INTERVAL" description:"tip poll interval in follow mode" default:"30s"`
	ZMQAddr      string        `long:"zmq-addr" env:"AUXPOW_EXTRACTOR_ZMQ_ADDR" description:"zmqpubhashblock endpoint, wakes follow mode early (zmq builds only)"`
	MetricsAddr  string        `long:"metrics-addr" env:"AUXPOW_EXTRACTOR_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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
		logger.Fatal("auxpow extractor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := address.NamecoinToBitcoin(cfg.Network)
	if err != nil {
		return fmt.Errorf("address params: %w", err)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	writer, err := dataset.Open(cfg.Dataset, logger)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("failed to close dataset", zap.Error(err))
		}
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init namecoin rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	client := namecoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network))

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}

	svc, err := extractor.NewService(
		namecoin.NewReader(client, logger.Named("reader")),
		address.NewCodec(params),
		writer,
		metrics.NewExtractor(cfg.Network),
		extractor.Config{
			PageSize:     cfg.PageSize,
			MaxAttempts:  cfg.MaxAttempts,
			RetryDelay:   cfg.RetryDelay,
			Follow:       cfg.Follow,
			PollInterval: cfg.PollInterval,
		},
		cfg.Network,
		logger,
		blockSignal,
	)
	if err != nil {
		return err
	}

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("extraction stopped", zap.Uint64("next_height", writer.Next()))
	return nil
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

// newRPCClient builds a batch-mode client; every *Async call is queued until Send.
func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.NewBatch(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	})
}
